package main

import (
	"image"

	"github.com/hajimehoshi/ebiten"
)

// Nine stretches a nine-slice image: corners keep their size, edges and centre scale.
type Nine struct {
	image *ebiten.Image
	inset int
}

func (n *Nine) Draw(screen *ebiten.Image, x, y, width, height int) {
	sw, sh := n.image.Size()
	srcX := [4]int{0, n.inset, sw - n.inset, sw}
	srcY := [4]int{0, n.inset, sh - n.inset, sh}
	dstX := [4]int{x, x + n.inset, x + width - n.inset, x + width}
	dstY := [4]int{y, y + n.inset, y + height - n.inset, y + height}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			part := n.image.SubImage(image.Rect(srcX[i], srcY[j], srcX[i+1], srcY[j+1])).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				float64(dstX[i+1]-dstX[i])/float64(srcX[i+1]-srcX[i]),
				float64(dstY[j+1]-dstY[j])/float64(srcY[j+1]-srcY[j]))
			op.GeoM.Translate(float64(dstX[i]), float64(dstY[j]))
			screen.DrawImage(part, op)
		}
	}
}
