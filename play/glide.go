package play

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/homeward/model"
)

// Glide eases the drawn avatar between two cell centres. It never feeds back into movement.
type Glide struct {
	x, y *gween.Tween
	at   model.Vec
	to   model.Vec
	done bool
}

func NewGlide(from, to model.Vec, seconds float64) *Glide {
	g := &Glide{at: from, to: to}
	if seconds <= 0 || from == to {
		g.at = to
		g.done = true
		return g
	}
	g.x = gween.New(float32(from.X), float32(to.X), float32(seconds), ease.OutQuad)
	g.y = gween.New(float32(from.Y), float32(to.Y), float32(seconds), ease.OutQuad)
	return g
}

func (g *Glide) Update(dt float64) model.Vec {
	if g.done {
		return g.at
	}
	x, xDone := g.x.Update(float32(dt))
	y, yDone := g.y.Update(float32(dt))
	g.at = model.Vec{X: float64(x), Y: float64(y)}
	if xDone && yDone {
		g.at = g.to
		g.done = true
	}
	return g.at
}

func (g *Glide) Position() model.Vec {
	return g.at
}

func (g *Glide) Done() bool {
	return g.done
}
