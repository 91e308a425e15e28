package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a settings file whenever it changes on disk. Successfully
// parsed files arrive on Updates; read or validation failures arrive on
// Errors and leave the previous configuration in place.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan File
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewWatcher starts watching path. The directory is watched rather than the
// file so editors that save by rename are still picked up.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher := &Watcher{
		path:    abs,
		watcher: w,
		Updates: make(chan File, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher. Updates and Errors are closed once the event
// pump has exited.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Updates)
		close(w.Errors)
		close(w.done)
	}()

	// Editors often emit several events per save. Reload once the file has
	// been quiet for reloadDebounce.
	timer := time.NewTimer(reloadDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			f, err := LoadFile(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&f, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send delivers a result without blocking the pump. A newer update replaces
// one the host has not consumed yet.
func (w *Watcher) send(f *File, err error) {
	if err != nil {
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	select {
	case <-w.Updates:
	default:
	}
	select {
	case w.Updates <- *f:
	case <-w.closeCh:
	}
}
