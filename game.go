package main

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/homeward/config"
	"github.com/zucenko/homeward/play"
	"github.com/zucenko/homeward/sprite"
)

const (
	backdropBlur = 6
	panelSize    = 48
	panelInset   = 14
)

type Game struct {
	ctrl    *play.Controller
	cfg     config.Config
	watcher *config.Watcher

	faces  *Faces
	sounds *Sounds
	panel  *Nine

	// rebuilt for every session
	maze     *ebiten.Image
	house    *ebiten.Image
	avatar   *ebiten.Image
	backdrop *ebiten.Image
}

func NewGame(cfg config.Config, rng *rand.Rand, watcher *config.Watcher) (*Game, error) {
	faces, err := loadFaces()
	if err != nil {
		return nil, err
	}
	panelImage, err := ebiten.NewImageFromImage(sprite.Panel(panelSize, panelInset-2), ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	return &Game{
		ctrl:    play.NewController(play.SettingsFrom(cfg), rng),
		cfg:     cfg,
		watcher: watcher,
		faces:   faces,
		sounds:  NewSounds(cfg),
		panel:   &Nine{image: panelImage, inset: panelInset},
	}, nil
}

func (g *Game) update(screen *ebiten.Image) error {
	g.reload()

	ev := g.ctrl.Tick(sampleFrame())
	if err := g.react(ev); err != nil {
		return err
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	switch g.ctrl.State {
	case play.MENU:
		g.drawMenu(screen)
	case play.PLAYING:
		g.drawPlaying(screen)
	case play.FINISHED:
		g.drawFinished(screen)
	}
	return nil
}

func (g *Game) react(ev play.Events) error {
	if ev.Started {
		if err := g.prepareSession(); err != nil {
			return err
		}
	}
	if ev.Stepped {
		g.sounds.Step()
	}
	if ev.Won {
		g.sounds.Victory()
		img, err := ebiten.NewImageFromImage(
			sprite.Backdrop(g.ctrl.Session().Grid, int(g.ctrl.Session().CellSize()), backdropBlur),
			ebiten.FilterDefault)
		if err != nil {
			return err
		}
		g.backdrop = img
	}
	return nil
}

// prepareSession rasterises the sprites of a freshly started game.
func (g *Game) prepareSession() error {
	s := g.ctrl.Session()
	cell := int(s.CellSize())

	var err error
	if g.maze, err = ebiten.NewImageFromImage(sprite.Backdrop(s.Grid, cell, 0), ebiten.FilterDefault); err != nil {
		return err
	}
	if g.house, err = ebiten.NewImageFromImage(sprite.House(cell), ebiten.FilterDefault); err != nil {
		return err
	}
	avatar := int(2 * s.CellSize() * g.cfg.RadiusFactor)
	if g.avatar, err = ebiten.NewImageFromImage(sprite.Player(avatar), ebiten.FilterDefault); err != nil {
		return err
	}
	return nil
}

// reload applies a config the watcher picked up. Gameplay values wait for the next game.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	cfg, ok := g.watcher.Latest()
	if !ok {
		return
	}
	cfg.Seed = g.cfg.Seed
	g.cfg = cfg
	g.ctrl.Reconfigure(play.SettingsFrom(cfg))
	g.sounds.Configure(cfg)
	applyLogLevel(cfg)
	log.WithFields(log.Fields{
		"movement": cfg.Movement,
		"volume":   cfg.Volume,
		"mute":     cfg.Mute,
	}).Info("config applied")
}
