package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	MovementDiscrete   = "discrete"
	MovementContinuous = "continuous"
)

// Config holds every tunable of the game. Fields absent from a file keep their defaults;
// fields present, even as zero, replace them.
type Config struct {
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	CellSize     float64 `json:"cell_size"`
	Movement     string  `json:"movement"`
	Speed        float64 `json:"speed"`
	Friction     float64 `json:"friction"`
	RadiusFactor float64 `json:"radius_factor"`
	GlideSeconds float64 `json:"glide_seconds"`
	Volume       float64 `json:"volume"`
	Mute         bool    `json:"mute"`
	Seed         int64   `json:"seed"` // 0 seeds from the clock
	LogLevel     string  `json:"log_level"`
}

func Default() Config {
	return Config{
		Width:        1024,
		Height:       768,
		CellSize:     40,
		Movement:     MovementDiscrete,
		Speed:        3,
		Friction:     .85,
		RadiusFactor: .4,
		GlideSeconds: .12,
		Volume:       .6,
		LogLevel:     "info",
	}
}

// Load reads a JSON config over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		log.Debugf("config %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays the JSON document in r on the defaults and validates the result.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window %dx%d must be positive", c.Width, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("cell_size %v must be positive", c.CellSize)
	case c.Movement != MovementDiscrete && c.Movement != MovementContinuous:
		return fmt.Errorf("movement %q must be %q or %q", c.Movement, MovementDiscrete, MovementContinuous)
	case c.Friction <= 0 || c.Friction > 1:
		return fmt.Errorf("friction %v must be in (0, 1]", c.Friction)
	case c.RadiusFactor <= 0 || c.RadiusFactor >= .5:
		return fmt.Errorf("radius_factor %v must be in (0, 0.5)", c.RadiusFactor)
	case c.Speed < 0 || c.GlideSeconds < 0:
		return fmt.Errorf("speed and glide_seconds must not be negative")
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("volume %v must be in [0, 1]", c.Volume)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Level is the parsed log level. Validate guarantees it parses.
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
