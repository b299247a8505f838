package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/zucenko/homeward/model"
	"github.com/zucenko/homeward/play"
)

var directionKeys = [4][]ebiten.Key{
	model.Right: {ebiten.KeyRight, ebiten.KeyD},
	model.Down:  {ebiten.KeyDown, ebiten.KeyS},
	model.Left:  {ebiten.KeyLeft, ebiten.KeyA},
	model.Up:    {ebiten.KeyUp, ebiten.KeyW},
}

var digitKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// sampleFrame reads the keyboard once per tick.
func sampleFrame() play.Frame {
	f := play.Frame{
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Back:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Dt:      1 / float64(ebiten.MaxTPS()),
	}
	for d, keys := range directionKeys {
		for _, k := range keys {
			if inpututil.IsKeyJustPressed(k) {
				f.Intent.Pressed[d] = true
			}
			if ebiten.IsKeyPressed(k) {
				f.Intent.Held[d] = true
			}
		}
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			f.Digit = i + 1
			break
		}
	}
	return f
}
