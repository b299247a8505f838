package play

import (
	"math"
	"math/rand"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/homeward/config"
	"github.com/zucenko/homeward/model"
	"github.com/zucenko/homeward/player"
)

func init() {
	log.SetLevel(log.WarnLevel)
}

func discrete() Settings {
	return SettingsFrom(config.Default())
}

func continuous() Settings {
	cfg := config.Default()
	cfg.Movement = config.MovementContinuous
	return SettingsFrom(cfg)
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		digit int
		want  Difficulty
		size  int
	}{
		{1, EASY, 10},
		{2, MEDIUM, 15},
		{3, HARD, 20},
	}
	for _, tt := range tests {
		d, ok := DifficultyFromKey(tt.digit)
		require.True(t, ok)
		assert.Equal(t, tt.want, d)
		assert.Equal(t, tt.size, d.Size(), d.Name())
	}
	for _, digit := range []int{0, 4, -1} {
		_, ok := DifficultyFromKey(digit)
		assert.False(t, ok, "digit %d", digit)
	}
	assert.Equal(t, "PLAYING", PLAYING.Name())
	assert.Equal(t, "N/A(9)", State(9).Name())
}

func TestGlide(t *testing.T) {
	g := NewGlide(model.Vec{X: 60, Y: 60}, model.Vec{X: 100, Y: 60}, .1)
	assert.False(t, g.Done())

	mid := g.Update(.05)
	assert.Greater(t, mid.X, 60.0)
	assert.Less(t, mid.X, 100.0)
	assert.False(t, g.Done())

	end := g.Update(.1)
	assert.True(t, g.Done())
	assert.Equal(t, model.Vec{X: 100, Y: 60}, end)

	instant := NewGlide(model.Vec{}, model.Vec{X: 1}, 0)
	assert.True(t, instant.Done())
	assert.Equal(t, model.Vec{X: 1}, instant.Position())
}

func TestSessionIgnoresPressesInFlight(t *testing.T) {
	s := NewSession(discrete(), EASY, rand.New(rand.NewSource(1)))
	require.True(t, s.Discrete())
	d := openStep(t, s.Grid, s.Cell())

	ev := s.Update(player.Press(d), 1.0/60)
	require.True(t, ev.Moved)
	assert.True(t, ev.Stepped)
	assert.True(t, s.InFlight())
	moved := s.Cell()

	back := d.Opposite()
	ev = s.Update(player.Press(back), 1.0/60)
	assert.False(t, ev.Moved)
	assert.False(t, ev.Blocked)
	assert.Equal(t, moved, s.Cell())

	s.Update(player.Intent{}, 1)
	assert.False(t, s.InFlight())
	ev = s.Update(player.Press(back), 1.0/60)
	assert.True(t, ev.Moved)
	assert.Equal(t, model.Point{X: 1, Y: 1}, s.Cell())
}

func TestSessionDrawPositionGlides(t *testing.T) {
	s := NewSession(discrete(), EASY, rand.New(rand.NewSource(1)))
	start := s.Position()
	s.Update(player.Press(openStep(t, s.Grid, s.Cell())), 0)

	assert.Equal(t, start, s.DrawPosition())
	assert.NotEqual(t, start, s.Position())

	s.Update(player.Intent{}, .06)
	draw := s.DrawPosition()
	assert.NotEqual(t, start, draw)
	assert.NotEqual(t, s.Position(), draw)
}

func TestSessionBlocked(t *testing.T) {
	s := NewSession(discrete(), EASY, rand.New(rand.NewSource(1)))
	ev := s.Update(player.Press(model.Up), 0)
	assert.True(t, ev.Blocked)
	assert.False(t, ev.Moved)
	assert.Equal(t, model.Point{X: 1, Y: 1}, s.Cell())
}

func TestSessionContinuous(t *testing.T) {
	s := NewSession(continuous(), EASY, rand.New(rand.NewSource(1)))
	require.False(t, s.Discrete())
	start := s.Position()

	ev := s.Update(player.Hold(model.Down), 1.0/60)
	assert.True(t, ev.Moved)
	assert.Greater(t, s.Position().Y, start.Y)
	assert.Equal(t, s.Position(), s.DrawPosition())
}

// steer holds a key along one axis unless coasting would already carry the body to rem.
func steer(rem, vel float64, plus, minus model.Direction) []model.Direction {
	coast := vel * player.DefaultFriction / (1 - player.DefaultFriction)
	switch {
	case coast < rem-.5:
		return []model.Direction{plus}
	case coast > rem+.5:
		return []model.Direction{minus}
	}
	return nil
}

func TestSessionContinuousWinsThroughOpenCells(t *testing.T) {
	s := NewSession(continuous(), EASY, rand.New(rand.NewSource(21)))
	require.NotEmpty(t, s.Path)
	body := s.mover.(*player.Body)

	next := 1
	for frame := 0; frame < 30000 && !s.Won(); frame++ {
		target := model.Center(s.Path[next], s.CellSize())
		rem := target.Sub(s.Position())
		if math.Abs(rem.X) < 4 && math.Abs(rem.Y) < 4 && next < len(s.Path)-1 {
			next++
		}
		v := body.Velocity()
		dirs := append(steer(rem.X, v.X, model.Right, model.Left), steer(rem.Y, v.Y, model.Down, model.Up)...)
		s.Update(player.Hold(dirs...), 1.0/60)

		require.True(t, s.Grid.Open(s.Cell()), "frame %d in wall %v at %v", frame, s.Cell(), s.Position())
	}
	require.True(t, s.Won())
	assert.Equal(t, s.Grid.Goal(), s.Cell())
}

func TestControllerFullGame(t *testing.T) {
	c := NewController(discrete(), rand.New(rand.NewSource(21)))
	assert.Equal(t, MENU, c.State)
	assert.Nil(t, c.Session())

	ev := c.Tick(Frame{Digit: 7})
	assert.False(t, ev.Started)
	assert.Equal(t, MENU, c.State)

	ev = c.Tick(Frame{Digit: 1})
	require.True(t, ev.Started)
	require.Equal(t, PLAYING, c.State)
	s := c.Session()
	require.NotNil(t, s)
	require.Equal(t, 10, s.Grid.Size())
	require.NotEmpty(t, s.Path)

	won := false
	for _, next := range s.Path[1:] {
		require.False(t, won)
		d := towards(t, s.Cell(), next)
		ev = c.Tick(Frame{Intent: player.Press(d), Dt: 1})
		require.True(t, ev.Moved, "blocked at %v", s.Cell())
		won = ev.Won
	}
	assert.True(t, won)
	assert.Equal(t, FINISHED, c.State)
	assert.Equal(t, model.Point{X: 8, Y: 8}, s.Cell())
	assert.Equal(t, float64(len(s.Path)-1), c.FinalTime())

	c.Tick(Frame{Intent: player.Press(model.Up), Dt: 1})
	assert.Equal(t, FINISHED, c.State)
	c.Tick(Frame{Confirm: true})
	assert.Equal(t, MENU, c.State)
}

func TestControllerBackToMenu(t *testing.T) {
	c := NewController(discrete(), rand.New(rand.NewSource(2)))
	c.Tick(Frame{Digit: 3})
	require.Equal(t, PLAYING, c.State)
	first := c.Session().Grid

	c.Tick(Frame{Back: true})
	assert.Equal(t, MENU, c.State)

	c.Tick(Frame{Digit: 2})
	assert.Equal(t, 15, c.Session().Grid.Size())
	assert.False(t, first == c.Session().Grid, "grid rebuilt")
	assert.Equal(t, model.Point{X: 1, Y: 1}, c.Session().Cell())
	assert.Zero(t, c.Session().Elapsed())
}

func TestControllerReconfigureAppliesNextGame(t *testing.T) {
	c := NewController(discrete(), rand.New(rand.NewSource(2)))
	c.Start(EASY)
	c.Reconfigure(continuous())
	assert.True(t, c.Session().Discrete())

	c.Start(EASY)
	assert.False(t, c.Session().Discrete())
}

func TestControllerSeeded(t *testing.T) {
	a := NewController(discrete(), rand.New(rand.NewSource(99)))
	b := NewController(discrete(), rand.New(rand.NewSource(99)))
	a.Start(HARD)
	b.Start(HARD)
	assert.Equal(t, a.Session().Grid, b.Session().Grid)
}

func openStep(t *testing.T, g *model.Grid, from model.Point) model.Direction {
	t.Helper()
	for _, d := range model.Directions {
		if g.Open(from.Add(d)) {
			return d
		}
	}
	t.Fatalf("no open neighbour at %v", from)
	return 0
}

func towards(t *testing.T, from, to model.Point) model.Direction {
	t.Helper()
	for _, d := range model.Directions {
		if from.Add(d) == to {
			return d
		}
	}
	t.Fatalf("%v is not next to %v", to, from)
	return 0
}
