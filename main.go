package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/homeward/config"
)

var (
	configPath = flag.String("config", "homeward.json", "JSON config file, watched for changes")
	debug      = flag.Bool("debug", false, "log at debug level")
	seed       = flag.Int64("seed", 0, "maze seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	applyLogLevel(cfg)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.WithField("seed", cfg.Seed).Info("starting")

	watcher, err := config.Watch(*configPath)
	if err != nil {
		log.Warnf("config %s not watched: %v", *configPath, err)
	} else {
		defer watcher.Close()
	}

	game, err := NewGame(cfg, rand.New(rand.NewSource(cfg.Seed)), watcher)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.Run(game.update, cfg.Width, cfg.Height, 1, "Maze Adventure"); err != nil {
		log.Fatal(err)
	}
}

func applyLogLevel(cfg config.Config) {
	if *debug {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(cfg.Level())
}
