package player

import "github.com/zucenko/homeward/model"

// Intent is one frame of directional input, indexed by model.Direction.
type Intent struct {
	Pressed [4]bool // went down this frame
	Held    [4]bool
}

// Press builds an Intent with a single fresh key press.
func Press(d model.Direction) Intent {
	var in Intent
	if d.Valid() {
		in.Pressed[d] = true
		in.Held[d] = true
	}
	return in
}

// Hold builds an Intent with keys held down and no fresh presses.
func Hold(dirs ...model.Direction) Intent {
	var in Intent
	for _, d := range dirs {
		if d.Valid() {
			in.Held[d] = true
		}
	}
	return in
}

// First returns the first freshly pressed direction, scanning right, down, left, up.
func (in Intent) First() (model.Direction, bool) {
	for _, d := range model.Directions {
		if in.Pressed[d] {
			return d, true
		}
	}
	return 0, false
}

// Axis sums the held directions into a unit-free vector, each component in -1..1.
func (in Intent) Axis() model.Vec {
	var v model.Vec
	if in.Held[model.Right] {
		v.X++
	}
	if in.Held[model.Left] {
		v.X--
	}
	if in.Held[model.Down] {
		v.Y++
	}
	if in.Held[model.Up] {
		v.Y--
	}
	return v
}
