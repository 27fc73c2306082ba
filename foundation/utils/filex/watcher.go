// File: watcher.go
// Title: Document Watcher
// Description: Watches directory trees with fsnotify and reports files
//              with an accepted extension once they have been quiet for
//              the debounce period. New directories are added as they
//              appear; ignored directories are never watched.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-12
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-12 v0.1.0: Initial implementation
// - 2026-10-17 v0.1.1: Start no longer races a concurrent Stop

package filex

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/fixstr/foundation/core/error"
	mdwerrors "github.com/msto63/fixstr/foundation/core/errors"
	mdwlog "github.com/msto63/fixstr/foundation/core/log"
)

const eventBuffer = 64

// Watcher reports created or written files below a set of roots.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	match   *matcher
	logger  *mdwlog.Logger
	roots   []string
	pending map[string]time.Time
	events  chan Match
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
}

// NewWatcher validates opts and creates an idle watcher. A nil logger
// discards diagnostics.
func NewWatcher(opts Options, logger *mdwlog.Logger) (*Watcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = mdwlog.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
			Operation("new_watcher").
			Cause(err).
			Code(mdwerror.CodeWatchFailed).
			Build()
	}

	return &Watcher{
		fsw:     fsw,
		match:   newMatcher(opts),
		logger:  logger.WithName("filex.watch"),
		pending: make(map[string]time.Time),
		events:  make(chan Match, eventBuffer),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Events returns the channel of settled matches. It is closed when the
// watcher stops.
func (w *Watcher) Events() <-chan Match {
	return w.events
}

// Start adds every root tree and begins delivering events. It returns an
// error if a root cannot be watched. Start is not blocking; the watcher
// runs until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, roots ...string) error {
	w.mu.Lock()
	if w.started || w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	for _, root := range roots {
		if !IsDir(root) {
			_, err := os.Stat(root)
			if err == nil {
				err = os.ErrNotExist
			}
			return mdwerrors.FromFS(mdwerrors.ModuleFilex, "watch", root, err)
		}
		clean := filepath.Clean(root)
		w.roots = append(w.roots, clean)
		if err := w.addTree(clean, false); err != nil {
			if w.isStopped() {
				return nil
			}
			return err
		}
	}

	// a Stop during setup has already closed fsw and events
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return nil
	}
	w.started = true

	w.logger.Info("watching", mdwlog.Field("roots", strings.Join(w.roots, ",")))
	go w.run(ctx)
	return nil
}

func (w *Watcher) isStopped() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stopped
}

// Stop ends the watcher and waits for its goroutine to exit. It is safe to
// call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	close(w.stopCh)
	if started {
		<-w.doneCh
		return
	}
	_ = w.fsw.Close()
	close(w.events)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.events)
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.WarnWithErr("closing fsnotify watcher", err)
		}
	}()

	tick := w.match.opts.Debounce / 2
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.WarnWithErr("watch error", err)

		case <-ticker.C:
			if !w.flush(ctx) {
				return
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		return
	}

	if info.IsDir() {
		if event.Has(fsnotify.Create) && w.match.entersDir(filepath.Base(event.Name)) {
			if err := w.addTree(event.Name, true); err != nil {
				w.logger.WarnWithErr("cannot watch new directory", err, mdwlog.Field("path", event.Name))
			}
		}
		return
	}

	if !info.Mode().IsRegular() || !w.match.acceptsFile(filepath.Base(event.Name)) {
		return
	}
	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// flush delivers pending paths that have been quiet for the debounce
// period. It returns false if the watcher is shutting down.
func (w *Watcher) flush(ctx context.Context) bool {
	now := time.Now()
	var ready []string

	w.mu.Lock()
	for path, seen := range w.pending {
		if now.Sub(seen) >= w.match.opts.Debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range ready {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		m := Match{
			Path:    path,
			Name:    filepath.Base(path),
			Ext:     extOf(path),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Depth:   w.depthOf(filepath.Dir(path)),
		}
		select {
		case w.events <- m:
		case <-ctx.Done():
			return false
		case <-w.stopCh:
			return false
		}
	}
	return true
}

// addTree watches dir and all accepted directories below it. When
// queueFiles is set, files already present are queued as if they had
// just been created, since they may predate the watch.
func (w *Watcher) addTree(dir string, queueFiles bool) error {
	if !w.match.descends(w.depthOf(dir)) {
		return nil
	}
	if err := w.fsw.Add(dir); err != nil {
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleFilex).
			Operation("watch").
			Messagef("cannot watch %s", dir).
			Cause(err).
			Code(mdwerror.CodeWatchFailed).
			Detail("path", dir).
			Build()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.WarnWithErr("skipping unreadable directory", err, mdwlog.Field("path", dir))
		return nil
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if !w.match.entersDir(entry.Name()) {
				continue
			}
			if err := w.addTree(path, queueFiles); err != nil {
				w.logger.WarnWithErr("cannot watch directory", err, mdwlog.Field("path", path))
			}
		case queueFiles && entry.Type().IsRegular() && w.match.acceptsFile(entry.Name()):
			w.mu.Lock()
			w.pending[path] = time.Now()
			w.mu.Unlock()
		}
	}
	return nil
}

// depthOf returns the number of path elements between the closest root
// and dir; a root itself has depth 0
func (w *Watcher) depthOf(dir string) int {
	best := -1
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		d := 0
		if rel != "." {
			d = strings.Count(rel, string(filepath.Separator)) + 1
		}
		if best == -1 || d < best {
			best = d
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
