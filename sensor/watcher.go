package sensor

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

const debounceInterval = 50 * time.Millisecond

// Watcher reports a fresh reading whenever the sensor file changes. The parent
// directory is watched so that writers which replace the file are still seen.
type Watcher struct {
	source  *FileSource
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

func NewWatcher(source *FileSource) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create file watcher")
	}

	return &Watcher{
		source: source,
		fw:     fw,
		done:   make(chan struct{}),
	}, nil
}

// Watch starts the event loop. A reading is taken once the file has been quiet
// for debounceInterval. onReading and onError are called from the loop
// goroutine; onError may be nil.
func (w *Watcher) Watch(ctx context.Context, onReading func(Reading), onError func(error)) error {
	target, err := filepath.Abs(w.source.Path())
	if err != nil {
		return errors.Wrap(err, "failed to resolve sensor path")
	}

	if err := w.fw.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "failed to watch %s", filepath.Dir(target))
	}

	report := func(err error) {
		if onError != nil {
			onError(err)
		}
	}

	go func() {
		var settle <-chan time.Time
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
					settle = time.After(debounceInterval)
				}

			case <-settle:
				settle = nil
				reading, err := w.source.Read(ctx)
				if err != nil {
					report(err)
					continue
				}
				onReading(reading)

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				report(err)

			case <-ctx.Done():
				return

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop is safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
