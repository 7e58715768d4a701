// Package watcher restores the security contexts of filesystem objects as
// they appear, following the restorecond model.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/cri-o/relabel/internal/log"
	"github.com/cri-o/relabel/pkg/filecontexts"
	"github.com/cri-o/relabel/pkg/relabel"
)

// Watcher relabels objects created or changed below the watched paths.
type Watcher struct {
	relabeler *relabel.Relabeler
	db        filecontexts.Database
	watcher   *fsnotify.Watcher
	closeChan chan struct{}
	closeOnce sync.Once
}

// New creates a Watcher observing the provided paths. The relabeler applies
// the expected contexts, the database resolves them and gets refreshed on
// Reload.
func New(relabeler *relabel.Relabeler, db filecontexts.Database, paths []string) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no paths to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			watcher.Close()

			return nil, fmt.Errorf("watch %s: %w", path, err)
		}
	}

	return &Watcher{
		relabeler: relabeler,
		db:        db,
		watcher:   watcher,
		closeChan: make(chan struct{}),
	}, nil
}

// Run processes filesystem events until Stop is called. Every event on a
// watched path triggers a non-recursive relabel of the event path. Event
// loop failures are logged, they do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			log.Debugf(ctx, "Event: %v", event)

			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Chmod) == 0 {
				continue
			}

			if err := w.relabeler.Relabel(ctx, event.Name, &relabel.Options{}); err != nil {
				log.Errorf(ctx, "Relabeling %s failed: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}

			log.Errorf(ctx, "Watch error: %v", err)

		case <-w.closeChan:
			log.Debugf(ctx, "Closing watcher...")

			return nil
		}
	}
}

// Stop terminates a running event loop. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.closeOnce.Do(func() { close(w.closeChan) })
}

// Reload refreshes the file contexts database if it supports reloading.
func (w *Watcher) Reload(ctx context.Context) error {
	reloader, ok := w.db.(filecontexts.Reloader)
	if !ok {
		log.Debugf(ctx, "File contexts database does not support reloading")

		return nil
	}

	if err := reloader.Reload(); err != nil {
		return fmt.Errorf("reload file contexts database: %w", err)
	}

	log.Infof(ctx, "Reloaded file contexts database")

	return nil
}
