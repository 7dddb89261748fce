package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/swing"
)

// ConfigWatcher reloads a settings file whenever it changes on disk. Reloads
// happen on the watcher goroutine; Apply hands the newest one to the scene on
// the frame goroutine.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan swing.Config
}

// WatchConfig starts watching path. The directory is watched rather than the
// file, since many editors save by replacing it.
func WatchConfig(path string) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	cw := &ConfigWatcher{
		path:    path,
		watcher: w,
		updates: make(chan swing.Config, 1),
	}
	go cw.loop()
	return cw, nil
}

func (cw *ConfigWatcher) loop() {
	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := swing.LoadConfig(cw.path)
			if err != nil {
				slog.Warn("config reload failed", "path", cw.path, "err", err)
				continue
			}
			// Only the newest settings matter.
			select {
			case <-cw.updates:
			default:
			}
			cw.updates <- cfg
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher", "err", err)
		}
	}
}

// Apply passes the newest reloaded settings, if any, to scene. It reports
// whether the scene's config changed.
func (cw *ConfigWatcher) Apply(scene *swing.Scene) bool {
	select {
	case cfg := <-cw.updates:
		if err := scene.SetConfig(cfg); err != nil {
			slog.Warn("config rejected", "path", cw.path, "err", err)
			return false
		}
		slog.Info("config reloaded", "path", cw.path)
		return true
	default:
		return false
	}
}

// Close stops watching. It is safe on a nil watcher.
func (cw *ConfigWatcher) Close() error {
	if cw == nil {
		return nil
	}
	return cw.watcher.Close()
}
