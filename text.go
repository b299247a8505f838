package main

import (
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Faces are the text sizes used by the menu, HUD and victory screen.
type Faces struct {
	Title    font.Face
	Subtitle font.Face
	Body     font.Face
	Banner   font.Face
	Small    font.Face
}

func loadFaces() (*Faces, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Faces{
		Title:    face(50),
		Subtitle: face(30),
		Body:     face(25),
		Banner:   face(40),
		Small:    face(20),
	}, nil
}

// drawText draws s with its top left corner at x, y.
func drawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// drawCentered draws s horizontally centred on cx with its top at y.
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	drawText(dst, s, face, cx-w/2, y, clr)
}
