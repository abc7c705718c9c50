package rooms

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports room files changing on disk. Development tooling only: the
// shipped game reads rooms from an embedded FS that never changes. The
// watcher never touches the cache itself; the logic tick drains Events and
// invalidates there, so all cache access stays on one goroutine.
type Watcher struct {
	fw      *fsnotify.Watcher
	events  chan Coord
	errs    chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchRooms watches dir for room TMX changes and delivers the affected
// coordinates on Events.
func WatchRooms(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:      fw,
		events:  make(chan Coord, 16),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events delivers the coordinates of rooms whose files changed.
func (w *Watcher) Events() <-chan Coord { return w.events }

// Errors delivers watcher failures.
func (w *Watcher) Errors() <-chan error { return w.errs }

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fw.Close()
	})
	return err
}

func (w *Watcher) run() {
	// Editors fire several events per save; collapse bursts per file.
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			coord, ok := ParseFilename(filepath.Base(event.Name))
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < 100*time.Millisecond {
				continue
			}
			last[event.Name] = now

			select {
			case w.events <- coord:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
