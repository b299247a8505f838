package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/homeward/config"
	"github.com/zucenko/homeward/model"
	"github.com/zucenko/homeward/play"
	"github.com/zucenko/homeward/player"
)

const tick = 16 * time.Millisecond

var (
	wallStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(50, 50, 50))
	openStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 200, 200))
	goalStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(0, 200, 0))
	playerStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 255, 0)).Background(tcell.NewRGBColor(200, 200, 200)).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

type term struct {
	screen tcell.Screen
	ctrl   *play.Controller
	frame  play.Frame
}

func main() {
	configPath := flag.String("config", "homeward.json", "JSON config file")
	logPath := flag.String("log", "", "write logs to this file")
	seed := flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.SetLevel(cfg.Level())
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.WithField("seed", *seed).Info("starting terminal frontend")

	// Terminals report key presses only, so the walker is the only usable model.
	settings := play.SettingsFrom(cfg)
	settings.Movement = config.MovementDiscrete
	settings.CellSize = 1
	settings.GlideSeconds = 0

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	t := &term{screen: screen, ctrl: play.NewController(settings, rand.New(rand.NewSource(*seed)))}
	t.run()
	screen.Fini()
}

func (t *term) run() {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(t.screen, done)

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !t.handle(ev) {
				return
			}
		case now := <-ticker.C:
			t.frame.Dt = now.Sub(last).Seconds()
			last = now
			t.ctrl.Tick(t.frame)
			t.frame = play.Frame{}
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is closed.
func pollEvents(screen tcell.Screen, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// handle folds one event into the pending frame, false means quit.
func (t *term) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEscape:
			t.frame.Back = true
		case tcell.KeyRight:
			t.frame.Intent = player.Press(model.Right)
		case tcell.KeyDown:
			t.frame.Intent = player.Press(model.Down)
		case tcell.KeyLeft:
			t.frame.Intent = player.Press(model.Left)
		case tcell.KeyUp:
			t.frame.Intent = player.Press(model.Up)
		case tcell.KeyRune:
			switch r := ev.Rune(); r {
			case 'q':
				return false
			case ' ':
				t.frame.Confirm = true
			case 'l':
				t.frame.Intent = player.Press(model.Right)
			case 'j':
				t.frame.Intent = player.Press(model.Down)
			case 'h':
				t.frame.Intent = player.Press(model.Left)
			case 'k':
				t.frame.Intent = player.Press(model.Up)
			case '1', '2', '3':
				t.frame.Digit = int(r - '0')
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *term) draw() {
	t.screen.Clear()
	switch t.ctrl.State {
	case play.MENU:
		t.text(2, 1, "MAZE ADVENTURE")
		t.text(2, 3, "Help the player find their way home!")
		t.text(2, 5, "1: Simple  2: Medium  3: Hard")
		t.text(2, 7, "arrows or hjkl to walk, esc for menu, q to quit")
	case play.PLAYING:
		s := t.ctrl.Session()
		t.maze(s)
		t.text(0, s.Grid.Size()+1, fmt.Sprintf("Time: %.1f", s.Elapsed()))
	case play.FINISHED:
		t.text(2, 1, "Congratulations!")
		t.text(2, 3, fmt.Sprintf("Time: %.1f seconds", t.ctrl.FinalTime()))
		t.text(2, 5, "Press SPACE to play again")
	}
	t.screen.Show()
}

// maze draws every cell two columns wide so it looks square.
func (t *term) maze(s *play.Session) {
	g := s.Grid
	at := s.Cell()
	for y := 0; y < g.Size(); y++ {
		for x := 0; x < g.Size(); x++ {
			p := model.Point{X: x, Y: y}
			style, glyph := openStyle, ' '
			switch {
			case g.IsWall(x, y):
				style = wallStyle
			case p == at:
				style, glyph = playerStyle, '@'
			case p == g.Goal():
				style = goalStyle
			}
			t.screen.SetContent(2*x, y, glyph, nil, style)
			t.screen.SetContent(2*x+1, y, ' ', nil, style)
		}
	}
}

func (t *term) text(x, y int, s string) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}
