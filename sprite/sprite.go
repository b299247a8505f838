package sprite

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/zucenko/homeward/model"
)

// shapes are drawn this many times larger and downsampled
const supersample = 4

// Player draws the avatar face filling a size x size square.
func Player(size int) image.Image {
	s := float64(size * supersample)
	dc := gg.NewContext(int(s), int(s))
	c, r := s/2, s/2

	dc.SetColor(PlayerColor)
	dc.DrawCircle(c, c, r)
	dc.Fill()

	dc.SetColor(color.White)
	dc.DrawCircle(c-r/3, c-r/3, r/4)
	dc.DrawCircle(c+r/3, c-r/3, r/4)
	dc.Fill()

	dc.SetLineWidth(2 * supersample)
	dc.DrawLine(c-r/2, c+r/3, c+r/2, c+r/3)
	dc.Stroke()

	return imaging.Resize(dc.Image(), size, size, imaging.Lanczos)
}

// House draws the goal marker for one cell.
func House(size int) image.Image {
	s := float64(size * supersample)
	dc := gg.NewContext(int(s), int(s))

	dc.SetColor(HouseColor)
	dc.DrawRectangle(0, s/3, s, 2*s/3)
	dc.Fill()

	dc.SetColor(roofColor)
	dc.MoveTo(s/2, 0)
	dc.LineTo(0, s/3)
	dc.LineTo(s, s/3)
	dc.ClosePath()
	dc.Fill()

	dc.SetColor(doorColor)
	dc.DrawRectangle(s/3, s/2, s/3, s/2)
	dc.Fill()

	dc.SetColor(knobColor)
	dc.DrawCircle(2*s/3-5*supersample, 3*s/4, 3*supersample)
	dc.Fill()

	return imaging.Resize(dc.Image(), size, size, imaging.Lanczos)
}

// Backdrop paints the whole maze and blurs it, for drawing behind the victory text.
func Backdrop(grid *model.Grid, cell int, sigma float64) image.Image {
	px := grid.Size() * cell
	dc := gg.NewContext(px, px)
	dc.SetColor(PathColor)
	dc.Clear()

	dc.SetColor(WallColor)
	for x := 0; x < grid.Size(); x++ {
		for y := 0; y < grid.Size(); y++ {
			if grid.IsWall(x, y) {
				dc.DrawRectangle(float64(x*cell), float64(y*cell), float64(cell), float64(cell))
			}
		}
	}
	dc.Fill()

	goal := grid.Goal()
	dc.SetColor(ExitColor)
	dc.DrawRectangle(float64(goal.X*cell), float64(goal.Y*cell), float64(cell), float64(cell))
	dc.Fill()

	if sigma <= 0 {
		return dc.Image()
	}
	return imaging.Blur(dc.Image(), sigma)
}

// Panel is a rounded box used as the nine-slice source of menu panels.
// The corners are radius pixels, so slicing at radius and size-radius keeps them intact.
func Panel(size int, radius float64) image.Image {
	dc := gg.NewContext(size, size)
	dc.DrawRoundedRectangle(1, 1, float64(size-2), float64(size-2), radius)
	dc.SetColor(MenuColor)
	dc.FillPreserve()
	dc.SetColor(TextColor)
	dc.SetLineWidth(2)
	dc.Stroke()
	return dc.Image()
}
