// Package hotreload watches a directory for changed files and hands the
// changed paths to the main loop.
package hotreload

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/glstudio/internal/logger"
)

// ErrClosed is returned when the watcher has already been closed.
var ErrClosed = errors.New("watcher closed")

const queueSize = 64

// Watcher reports files in one directory that were created or written.
// Events are collected on a background goroutine; Drain is called from the
// main loop.
type Watcher struct {
	fs      *fsnotify.Watcher
	exts    map[string]bool
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	log     *zap.Logger

	mu     sync.Mutex
	closed bool
}

// New starts watching dir. When exts is non-empty only files with one of
// those extensions are reported.
func New(dir string, exts ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fsw,
		exts:    make(map[string]bool, len(exts)),
		changes: make(chan string, queueSize),
		done:    make(chan struct{}),
		log:     logger.Named("hotreload"),
	}
	for _, ext := range exts {
		w.exts[strings.ToLower(ext)] = true
	}

	w.wg.Add(1)
	go w.run()

	w.log.Info("watching", zap.String("dir", dir), zap.Strings("exts", exts))
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 || !w.accepts(e.Name) {
				continue
			}
			select {
			case w.changes <- e.Name:
			default:
				// Queue full; the next write reports the path again.
				w.log.Debug("change dropped", zap.String("path", e.Name))
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error("watch error", zap.Error(err))

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) accepts(path string) bool {
	if len(w.exts) == 0 {
		return true
	}
	return w.exts[strings.ToLower(filepath.Ext(path))]
}

// Drain returns the distinct paths changed since the last call, in the order
// first seen. It never blocks.
func (w *Watcher) Drain() []string {
	var out []string
	seen := make(map[string]bool)
	for {
		select {
		case p := <-w.changes:
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		default:
			return out
		}
	}
}

// Close stops the watcher. Calling it twice returns ErrClosed.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
