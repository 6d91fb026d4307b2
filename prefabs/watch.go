package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// quiet is how long the watched files must stay untouched before changes
// are reported. Editors often write a file several times per save.
const quiet = 100 * time.Millisecond

// Watcher reports changed YAML files. Events and Errors are closed once the
// watcher has stopped.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher watches dirs and any single files given.
func NewWatcher(paths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, p := range paths {
		if err := w.Add(p); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain returns the files changed and the errors seen since the last call
// without blocking.
func (w *Watcher) Drain() (changed []string, errs []error) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return changed, errs
			}
			changed = append(changed, name)
		case err, ok := <-w.Errors:
			if ok {
				errs = append(errs, err)
			}
		default:
			return changed, errs
		}
	}
}

func (w *Watcher) run() {
	defer func() {
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	timer := time.NewTimer(quiet)
	timer.Stop()
	pending := make(map[string]bool)
	var order []string

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isSpecFile(event.Name) {
				continue
			}
			if !pending[event.Name] {
				pending[event.Name] = true
				order = append(order, event.Name)
			}
			timer.Reset(quiet)
		case <-timer.C:
			for _, name := range order {
				select {
				case w.Events <- name:
				case <-w.closeCh:
					return
				}
			}
			clear(pending)
			order = order[:0]
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
