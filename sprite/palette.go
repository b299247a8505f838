package sprite

import "image/color"

var (
	WallColor   = color.RGBA{R: 44, G: 62, B: 80, A: 255}
	PathColor   = color.RGBA{R: 236, G: 240, B: 241, A: 255}
	PlayerColor = color.RGBA{R: 231, G: 76, B: 60, A: 255}
	ExitColor   = color.RGBA{R: 46, G: 204, B: 113, A: 255}
	HouseColor  = color.RGBA{R: 155, G: 89, B: 182, A: 255}
	MenuColor   = color.RGBA{R: 52, G: 73, B: 94, A: 255}
	TextColor   = color.RGBA{R: 236, G: 240, B: 241, A: 255}
	Background  = color.RGBA{R: 245, G: 245, B: 245, A: 255}

	roofColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	doorColor = color.RGBA{R: 127, G: 106, B: 79, A: 255}
	knobColor = color.RGBA{R: 255, G: 203, B: 0, A: 255}
)
