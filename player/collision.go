package player

import (
	"math"

	"github.com/zucenko/homeward/model"
)

// contacts shallower than this are treated as resting, not penetrating
const contactSlop = 1e-9

// Rect is an axis aligned box in pixel space.
type Rect struct {
	X, Y, W, H float64
}

func CellRect(p model.Point, cellSize float64) Rect {
	return Rect{X: float64(p.X) * cellSize, Y: float64(p.Y) * cellSize, W: cellSize, H: cellSize}
}

// Closest clamps p onto the rectangle.
func (r Rect) Closest(p model.Vec) model.Vec {
	return model.Vec{
		X: math.Max(r.X, math.Min(p.X, r.X+r.W)),
		Y: math.Max(r.Y, math.Min(p.Y, r.Y+r.H)),
	}
}

// Overlaps reports whether a circle at center penetrates r.
func (r Rect) Overlaps(center model.Vec, radius float64) bool {
	return center.Sub(r.Closest(center)).Len() < radius
}

// edge picks the outward normal of the edge nearest to a point inside r.
// Ties resolve left, right, top, bottom.
func (r Rect) edge(p model.Vec) model.Vec {
	left := math.Abs(p.X - r.X)
	right := math.Abs(p.X - (r.X + r.W))
	top := math.Abs(p.Y - r.Y)
	bottom := math.Abs(p.Y - (r.Y + r.H))

	m := math.Min(math.Min(left, right), math.Min(top, bottom))
	switch m {
	case left:
		return model.Vec{X: -1}
	case right:
		return model.Vec{X: 1}
	case top:
		return model.Vec{Y: -1}
	default:
		return model.Vec{Y: 1}
	}
}

// Separate pushes a penetrating circle out of r by its penetration depth along the contact
// normal, then bounces vel off that normal and halves it. A centre inside r has no contact
// normal, so it leaves through the nearest edge instead.
// Circles that do not overlap r come back unchanged.
func Separate(pos, vel model.Vec, radius float64, r Rect) (model.Vec, model.Vec, bool) {
	diff := pos.Sub(r.Closest(pos))
	dist := diff.Len()
	if radius-dist <= contactSlop {
		return pos, vel, false
	}

	var n model.Vec
	if dist > 0 {
		n = diff.Scale(1 / dist)
		pos = pos.Add(n.Scale(radius - dist))
	} else {
		n = r.edge(pos)
		switch {
		case n.X < 0:
			pos.X = r.X - radius
		case n.X > 0:
			pos.X = r.X + r.W + radius
		case n.Y < 0:
			pos.Y = r.Y - radius
		default:
			pos.Y = r.Y + r.H + radius
		}
	}
	vel = vel.Sub(n.Scale(2 * vel.Dot(n))).Scale(bounceDamping)
	return pos, vel, true
}
