package play

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/homeward/player"
)

// Frame is the input sampled for one tick.
type Frame struct {
	Intent  player.Intent
	Digit   int  // menu digit pressed this frame, 0 for none
	Confirm bool // space
	Back    bool // escape
	Dt      float64
}

// Events tells the frontend what happened during a tick.
type Events struct {
	Started bool
	Moved   bool
	Stepped bool // entered a different cell
	Blocked bool // a discrete step ran into a wall
	Won     bool
}

// Controller drives the MENU, PLAYING, FINISHED cycle and owns the current Session.
type Controller struct {
	State State

	settings  Settings
	rng       *rand.Rand
	session   Session
	finalTime float64
}

// NewController takes ownership of rng; every maze is drawn from it.
func NewController(s Settings, rng *rand.Rand) *Controller {
	return &Controller{State: MENU, settings: s, rng: rng}
}

// Reconfigure changes the settings used by the next game.
func (c *Controller) Reconfigure(s Settings) {
	c.settings = s
}

func (c *Controller) Tick(f Frame) Events {
	var ev Events
	switch c.State {
	case MENU:
		if d, ok := DifficultyFromKey(f.Digit); ok {
			c.Start(d)
			ev.Started = true
		}
	case PLAYING:
		if f.Back {
			log.Info("game abandoned")
			c.State = MENU
			return ev
		}
		ev = c.session.Update(f.Intent, f.Dt)
		if ev.Blocked {
			log.WithField("cell", c.session.Cell()).Debug("move blocked")
		}
		if c.session.Won() {
			c.finalTime = c.session.Elapsed()
			c.State = FINISHED
			ev.Won = true
			log.WithFields(log.Fields{
				"difficulty": c.session.Difficulty.Name(),
				"seconds":    c.finalTime,
			}).Info("home reached")
		}
	case FINISHED:
		if f.Confirm {
			c.State = MENU
		}
	}
	return ev
}

// Start builds a fresh Session for d and enters PLAYING.
func (c *Controller) Start(d Difficulty) {
	c.session = NewSession(c.settings, d, c.rng)
	c.finalTime = 0
	c.State = PLAYING

	fields := log.Fields{
		"difficulty": d.Name(),
		"size":       c.session.Grid.Size(),
		"movement":   c.settings.Movement,
		"reachable":  c.session.Path != nil,
	}
	if c.session.Path == nil {
		log.WithFields(fields).Warn("new game with unreachable goal")
		return
	}
	fields["path"] = len(c.session.Path)
	log.WithFields(fields).Info("new game")
}

// Session is the current game, nil before the first one starts.
func (c *Controller) Session() *Session {
	if c.session.Grid == nil {
		return nil
	}
	return &c.session
}

// FinalTime is the time of the last completed game.
func (c *Controller) FinalTime() float64 {
	return c.finalTime
}
