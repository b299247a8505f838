package main

import (
	"github.com/hajimehoshi/ebiten/audio"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/homeward/config"
	"github.com/zucenko/homeward/sound"
)

// Sounds plays the step and victory clips. Without an audio device it stays silent.
type Sounds struct {
	step    *audio.Player
	victory *audio.Player
	mute    bool
}

func NewSounds(cfg config.Config) *Sounds {
	s := &Sounds{}
	ctx, err := audio.NewContext(int(sound.SampleRate))
	if err != nil {
		log.Warnf("audio unavailable: %v (continuing without audio)", err)
		return s
	}
	if s.step, err = audio.NewPlayerFromBytes(ctx, sound.PCM(sound.Step(), 1)); err != nil {
		log.Warnf("step sound: %v", err)
	}
	if s.victory, err = audio.NewPlayerFromBytes(ctx, sound.PCM(sound.Victory(), 1)); err != nil {
		log.Warnf("victory sound: %v", err)
	}
	s.Configure(cfg)
	return s
}

func (s *Sounds) Configure(cfg config.Config) {
	s.mute = cfg.Mute
	for _, p := range []*audio.Player{s.step, s.victory} {
		if p != nil {
			p.SetVolume(cfg.Volume)
		}
	}
}

func (s *Sounds) Step() {
	s.play(s.step)
}

func (s *Sounds) Victory() {
	s.play(s.victory)
}

func (s *Sounds) play(p *audio.Player) {
	if p == nil || s.mute {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Warnf("rewind: %v", err)
		return
	}
	if err := p.Play(); err != nil {
		log.Warnf("play: %v", err)
	}
}
