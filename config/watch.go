package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// Watcher reloads a config file whenever it is written or replaced.
type Watcher struct {
	Configs <-chan Config

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch observes the directory holding path so editors that replace the file are seen too.
// Only the newest valid config is kept when the reader falls behind.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	target := filepath.Clean(path)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, err
	}

	configs := make(chan Config, 1)
	w := &Watcher{Configs: configs, watcher: fw, done: make(chan struct{})}
	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
					continue
				}
				cfg, err := Load(target)
				if err != nil {
					log.Warnf("config reload: %v", err)
					continue
				}
				log.WithField("path", target).Debug("config reloaded")
				select {
				case <-configs:
				default:
				}
				configs <- cfg
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Warnf("config watcher: %v", err)
			}
		}
	}()
	return w, nil
}

// Latest returns the most recent reload without blocking.
func (w *Watcher) Latest() (Config, bool) {
	select {
	case cfg := <-w.Configs:
		return cfg, true
	default:
		return Config{}, false
	}
}

func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
