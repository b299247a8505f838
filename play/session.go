package play

import (
	"math/rand"

	"github.com/zucenko/homeward/config"
	"github.com/zucenko/homeward/maze"
	"github.com/zucenko/homeward/model"
	"github.com/zucenko/homeward/player"
)

// Settings are the gameplay tunables a Session is built with.
type Settings struct {
	CellSize     float64
	Movement     string
	Speed        float64
	Friction     float64
	RadiusFactor float64
	GlideSeconds float64
}

func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		CellSize:     cfg.CellSize,
		Movement:     cfg.Movement,
		Speed:        cfg.Speed,
		Friction:     cfg.Friction,
		RadiusFactor: cfg.RadiusFactor,
		GlideSeconds: cfg.GlideSeconds,
	}
}

// Mover is either player model: it reads one frame of input against the maze.
type Mover interface {
	Update(in player.Intent, grid *model.Grid) bool
	Position() model.Vec
}

// Session is one game: a maze, the avatar in it and the clock.
// A new game builds a new Session instead of resetting this one.
type Session struct {
	Difficulty Difficulty
	Grid       *model.Grid
	Path       []model.Point // shortest start to goal route, nil when the goal is cut off

	settings Settings
	mover    Mover
	discrete bool
	glide    *Glide
	cell     model.Point
	elapsed  float64
}

func NewSession(s Settings, d Difficulty, rng *rand.Rand) Session {
	grid := maze.Generate(d.Size(), rng)
	session := Session{
		Difficulty: d,
		Grid:       grid,
		Path:       maze.Solve(grid, grid.Start(), grid.Goal()),
		settings:   s,
		cell:       grid.Start(),
	}
	if s.Movement == config.MovementContinuous {
		body := player.NewBody(model.Center(grid.Start(), s.CellSize), s.CellSize)
		body.Speed = s.Speed
		body.Friction = s.Friction
		body.Radius = s.CellSize * s.RadiusFactor
		session.mover = body
	} else {
		session.mover = player.NewWalker(grid.Start(), s.CellSize)
		session.discrete = true
	}
	return session
}

// Update runs one frame. In the discrete model presses are ignored while the previous
// step is still gliding.
func (s *Session) Update(in player.Intent, dt float64) Events {
	var ev Events
	s.elapsed += dt
	if s.glide != nil {
		s.glide.Update(dt)
	}

	if s.discrete && s.InFlight() {
		in.Pressed = [4]bool{}
	}
	_, pressed := in.First()
	from := s.DrawPosition()

	ev.Moved = s.mover.Update(in, s.Grid)
	if s.discrete {
		ev.Blocked = pressed && !ev.Moved
		if ev.Moved {
			s.glide = NewGlide(from, s.mover.Position(), s.settings.GlideSeconds)
		}
	}

	cell := model.CellOf(s.mover.Position(), s.settings.CellSize)
	ev.Stepped = cell != s.cell
	s.cell = cell
	return ev
}

// InFlight reports whether a discrete step is still being animated.
func (s *Session) InFlight() bool {
	return s.glide != nil && !s.glide.Done()
}

// Won reports whether the avatar has crossed into the goal cell on both axes.
func (s *Session) Won() bool {
	threshold := float64(s.Grid.Size()-2) * s.settings.CellSize
	p := s.mover.Position()
	return p.X > threshold && p.Y > threshold
}

// Position is the committed avatar position.
func (s *Session) Position() model.Vec {
	return s.mover.Position()
}

// DrawPosition is where the avatar should be drawn this frame.
func (s *Session) DrawPosition() model.Vec {
	if s.InFlight() {
		return s.glide.Position()
	}
	return s.mover.Position()
}

func (s *Session) Cell() model.Point {
	return s.cell
}

func (s *Session) Elapsed() float64 {
	return s.elapsed
}

func (s *Session) CellSize() float64 {
	return s.settings.CellSize
}

func (s *Session) Discrete() bool {
	return s.discrete
}
