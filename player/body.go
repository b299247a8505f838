package player

import (
	"math"

	"github.com/zucenko/homeward/model"
)

const (
	diagonalScale = math.Sqrt2 / 2
	restingSpeed  = 0.01
	bounceDamping = 0.5

	// a push out of one wall can graze its neighbour, so the scan repeats
	collisionPasses = 4

	DefaultSpeed        = 3.0
	DefaultFriction     = 0.85
	DefaultRadiusFactor = 0.4
)

// Body is a circle sliding through the maze with friction and damped bounces off walls.
type Body struct {
	Radius   float64
	Speed    float64 // velocity gained per frame of held input
	Friction float64 // velocity kept per frame

	pos, vel model.Vec
	cellSize float64
}

func NewBody(at model.Vec, cellSize float64) *Body {
	return &Body{
		Radius:   cellSize * DefaultRadiusFactor,
		Speed:    DefaultSpeed,
		Friction: DefaultFriction,
		pos:      at,
		cellSize: cellSize,
	}
}

func (b *Body) Position() model.Vec {
	return b.pos
}

func (b *Body) Velocity() model.Vec {
	return b.vel
}

// Update advances one frame: input, friction, integration, then wall collisions.
// It reports whether the position changed.
func (b *Body) Update(in Intent, grid *model.Grid) bool {
	axis := in.Axis()
	if axis.X != 0 && axis.Y != 0 {
		axis = axis.Scale(diagonalScale)
	}
	b.vel = b.vel.Add(axis.Scale(b.Speed))
	b.applyFriction()

	before := b.pos
	b.pos = b.pos.Add(b.vel)
	b.collide(grid)
	return b.pos != before
}

func (b *Body) applyFriction() {
	b.vel = b.vel.Scale(b.Friction)
	if math.Abs(b.vel.X) < restingSpeed {
		b.vel.X = 0
	}
	if math.Abs(b.vel.Y) < restingSpeed {
		b.vel.Y = 0
	}
}

// collide resolves each wall of the 3x3 neighbourhood in scan order, one at a time,
// and rescans until a pass finds no contact.
func (b *Body) collide(grid *model.Grid) {
	for pass := 0; pass < collisionPasses; pass++ {
		if !b.collidePass(grid) {
			return
		}
	}
}

func (b *Body) collidePass(grid *model.Grid) bool {
	hit := false
	cell := model.CellOf(b.pos, b.cellSize)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			p := model.Point{X: cell.X + i, Y: cell.Y + j}
			if !grid.IsWall(p.X, p.Y) {
				continue
			}
			var touched bool
			b.pos, b.vel, touched = Separate(b.pos, b.vel, b.Radius, CellRect(p, b.cellSize))
			hit = hit || touched
		}
	}
	return hit
}
