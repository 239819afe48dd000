package config

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/emberengine/ember/engine/core"
)

// Watcher hot-reloads a frame-graph config file. On every change that parses
// and validates, the reload callback receives the fresh config; a broken
// edit is logged and skipped so the running graph keeps its last good state.
type Watcher struct {
	path     string
	onReload func(*Config)

	fsnotify *fsnotify.Watcher
	done     chan struct{}
	isClosed bool
}

// NewWatcher prepares a watcher for the config at path. Start must be called
// before events are delivered.
func NewWatcher(path string, onReload func(*Config)) (*Watcher, error) {
	if onReload == nil {
		return nil, errors.New("config watcher needs a reload callback")
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}

	return &Watcher{
		path:     filepath.Clean(path),
		onReload: onReload,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching. The parent directory is watched rather than the
// file itself, so editors that replace the file on save keep working.
func (w *Watcher) Start() error {
	if w.isClosed {
		return errors.New("config watcher already closed")
	}
	go w.run()
	return w.fsnotify.Add(filepath.Dir(w.path))
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("config watcher: reload of '%s' failed: %v", w.path, err)
				continue
			}
			core.LogInfo("config watcher: reloaded '%s'", w.path)
			w.onReload(cfg)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops watching and releases the fsnotify handle.
func (w *Watcher) Close() error {
	if w.isClosed {
		return nil
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
