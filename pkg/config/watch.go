package config

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports edits to the tuning file. Events are collected on a
// background goroutine; the game loop picks them up with Poll so that
// configuration is only ever applied from the loop goroutine.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	changed chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewWatcher watches the directory holding path, since editors usually
// replace a file rather than write it in place.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsWatch,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			log.Trace("Config file event: %s", e)
			select {
			case w.changed <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Error("Config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Poll returns the reloaded configuration if the file changed since the
// last call. It never blocks. An edit that does not parse is logged and skipped.
func (w *Watcher) Poll() (*Config, bool) {
	select {
	case <-w.changed:
	default:
		return nil, false
	}
	cfg, err := Load(w.path)
	if err != nil {
		log.Warn("Ignoring config change: %v", err)
		return nil, false
	}
	log.Info("Reloaded config from %s", w.path)
	return cfg, true
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}
