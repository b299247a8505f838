package player

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/homeward/maze"
	"github.com/zucenko/homeward/model"
)

const tolerance = 1e-9

func TestSeparateFace(t *testing.T) {
	wall := Rect{X: 40, Y: 0, W: 40, H: 40}
	pos, vel, hit := Separate(model.Vec{X: 30, Y: 20}, model.Vec{X: 2, Y: 1}, 16, wall)

	assert.True(t, hit)
	assert.InDelta(t, 24, pos.X, tolerance)
	assert.InDelta(t, 20, pos.Y, tolerance)
	assert.InDelta(t, -1, vel.X, tolerance)
	assert.InDelta(t, .5, vel.Y, tolerance)
}

func TestSeparateCorner(t *testing.T) {
	wall := Rect{X: 40, Y: 40, W: 40, H: 40}
	pos, _, hit := Separate(model.Vec{X: 35, Y: 37}, model.Vec{}, 16, wall)

	assert.True(t, hit)
	corner := model.Vec{X: 40, Y: 40}
	assert.InDelta(t, 16, pos.Sub(corner).Len(), tolerance)
	assert.Less(t, pos.X, 35.0)
	assert.Less(t, pos.Y, 37.0)
	assert.False(t, wall.Overlaps(pos, 16-tolerance))
}

func TestSeparateFollowsTouchedFace(t *testing.T) {
	// the centre is nearer the top edge line than the left face it touches
	wall := Rect{X: 40, Y: 40, W: 40, H: 40}
	pos, vel, hit := Separate(model.Vec{X: 24.6, Y: 55.3}, model.Vec{X: 3, Y: -1}, 16, wall)

	assert.True(t, hit)
	assert.InDelta(t, 24, pos.X, tolerance)
	assert.InDelta(t, 55.3, pos.Y, tolerance)
	assert.InDelta(t, -1.5, vel.X, tolerance)
	assert.InDelta(t, -.5, vel.Y, tolerance)
}

func TestSeparateFromInside(t *testing.T) {
	wall := Rect{X: 40, Y: 40, W: 40, H: 40}
	pos, _, hit := Separate(model.Vec{X: 45, Y: 60}, model.Vec{X: 1}, 16, wall)

	assert.True(t, hit)
	assert.Equal(t, model.Vec{X: 24, Y: 60}, pos)
}

func TestSeparateMiss(t *testing.T) {
	wall := Rect{X: 40, Y: 40, W: 40, H: 40}
	pos, vel, hit := Separate(model.Vec{X: 10, Y: 10}, model.Vec{X: 1}, 16, wall)
	assert.False(t, hit)
	assert.Equal(t, model.Vec{X: 10, Y: 10}, pos)
	assert.Equal(t, model.Vec{X: 1}, vel)
}

func TestSeparateLeavesNoPenetration(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	wall := Rect{X: 40, Y: 40, W: 40, H: 40}
	const radius = 16.0
	for i := 0; i < 2000; i++ {
		p := model.Vec{X: 40 - radius + rng.Float64()*(40+2*radius), Y: 40 - radius + rng.Float64()*(40+2*radius)}
		pos, _, _ := Separate(p, model.Vec{X: rng.Float64() - .5, Y: rng.Float64() - .5}, radius, wall)
		d := pos.Sub(wall.Closest(pos)).Len()
		assert.GreaterOrEqual(t, d, radius-tolerance, "from %v", p)
	}
}

func TestEdgeTieOrder(t *testing.T) {
	wall := Rect{X: 0, Y: 0, W: 40, H: 40}
	assert.Equal(t, model.Vec{X: -1}, wall.edge(model.Vec{X: 10, Y: 10}))
	assert.Equal(t, model.Vec{X: 1}, wall.edge(model.Vec{X: 30, Y: 30}))
	assert.Equal(t, model.Vec{Y: -1}, wall.edge(model.Vec{X: 20, Y: 5}))
	assert.Equal(t, model.Vec{Y: 1}, wall.edge(model.Vec{X: 20, Y: 35}))
}

func TestBodyAcceleratesWithFriction(t *testing.T) {
	g := parse(t, hall)
	b := NewBody(model.Vec{X: 60, Y: 60}, 40)

	assert.True(t, b.Update(Hold(model.Right), g))
	assert.InDelta(t, 2.55, b.Velocity().X, tolerance)
	assert.InDelta(t, 62.55, b.Position().X, tolerance)
	assert.Equal(t, 60.0, b.Position().Y)
}

func TestBodyDiagonalIsNormalised(t *testing.T) {
	b := NewBody(model.Vec{X: 100, Y: 100}, 40)
	open := model.NewGrid([][]bool{
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
		{false, false, false, false, false},
	})
	b.Update(Hold(model.Right, model.Down), open)
	v := b.Velocity()
	assert.InDelta(t, v.X, v.Y, tolerance)
	assert.InDelta(t, DefaultSpeed*DefaultFriction, v.Len(), tolerance)
}

func TestBodyComesToRest(t *testing.T) {
	g := parse(t, hall)
	b := NewBody(model.Vec{X: 60, Y: 60}, 40)
	b.vel = model.Vec{X: .011, Y: -.005}

	b.Update(Intent{}, g)
	assert.Equal(t, model.Vec{}, b.Velocity())
	assert.False(t, b.Update(Intent{}, g))
}

func TestBodyStopsAtWall(t *testing.T) {
	g := parse(t, hall)
	b := NewBody(model.Vec{X: 60, Y: 60}, 40)
	limit := 4*40 - b.Radius

	for i := 0; i < 300; i++ {
		b.Update(Hold(model.Right), g)
		assert.LessOrEqual(t, b.Position().X, limit+tolerance, "frame %d", i)
		assert.InDelta(t, 60, b.Position().Y, tolerance)
		cell := model.CellOf(b.Position(), 40)
		assert.True(t, g.Open(cell), "frame %d in wall %v", i, cell)
	}
}

func TestBodyResolvesPenetration(t *testing.T) {
	g := parse(t, hall)
	b := NewBody(model.Vec{X: 50, Y: 50}, 40)

	b.Update(Intent{}, g)
	cell := model.CellOf(b.Position(), 40)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			p := model.Point{X: cell.X + i, Y: cell.Y + j}
			if !g.IsWall(p.X, p.Y) {
				continue
			}
			d := b.Position().Sub(CellRect(p, 40).Closest(b.Position())).Len()
			assert.GreaterOrEqual(t, d, b.Radius-tolerance, "wall %v", p)
		}
	}
	assert.False(t, math.IsNaN(b.Position().X))
}

// requireClear fails when the body sits in a wall cell or penetrates any wall around it.
func requireClear(t *testing.T, b *Body, g *model.Grid, msg string, args ...interface{}) {
	t.Helper()
	cell := model.CellOf(b.Position(), b.cellSize)
	require.True(t, g.Open(cell), append([]interface{}{msg}, args...)...)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			p := model.Point{X: cell.X + i, Y: cell.Y + j}
			if !g.IsWall(p.X, p.Y) {
				continue
			}
			d := b.Position().Sub(CellRect(p, b.cellSize).Closest(b.Position())).Len()
			require.GreaterOrEqual(t, d, b.Radius-1e-6, append([]interface{}{msg}, args...)...)
		}
	}
}

func TestBodyStaysOutOfWallsInMazes(t *testing.T) {
	held := [][]model.Direction{
		{model.Right}, {model.Down}, {model.Left}, {model.Up},
		{model.Right, model.Down}, {model.Right, model.Up},
		{model.Left, model.Down}, {model.Left, model.Up},
		{},
	}
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g := maze.Generate(15, rng)
		b := NewBody(model.Center(g.Start(), 40), 40)

		var in Intent
		for frame := 0; frame < 2000; frame++ {
			if frame%15 == 0 {
				in = Hold(held[rng.Intn(len(held))]...)
			}
			b.Update(in, g)
			requireClear(t, b, g, "seed %d frame %d at %v", seed, frame, b.Position())
		}
	}
}

func TestBodyCornerOfCorridor(t *testing.T) {
	// one cell wide corridor turning down at its right end
	g := parse(t, `#####
#   #
### #
### #
#####
`)
	b := NewBody(model.Center(model.Point{X: 1, Y: 1}, 40), 40)
	for frame := 0; frame < 200; frame++ {
		b.Update(Hold(model.Right, model.Up), g)
		requireClear(t, b, g, "frame %d at %v", frame, b.Position())
	}
	assert.Equal(t, model.Point{X: 3, Y: 1}, model.CellOf(b.Position(), 40))

	for frame := 0; frame < 200; frame++ {
		b.Update(Hold(model.Right, model.Down), g)
		requireClear(t, b, g, "frame %d at %v", frame, b.Position())
	}
	assert.Equal(t, model.Point{X: 3, Y: 3}, model.CellOf(b.Position(), 40))
}
