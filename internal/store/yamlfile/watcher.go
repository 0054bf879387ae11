package yamlfile

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/colonyops/barber/internal/core/logging"
)

const debounceDelay = 50 * time.Millisecond

// FileWatcher signals when a single file is written, created, renamed or
// removed. Events are debounced and coalesced: a slow reader sees at most one
// pending signal.
type FileWatcher struct {
	name    string
	watcher *fsnotify.Watcher
	changes chan struct{}
	log     zerolog.Logger

	mu       sync.Mutex
	debounce *time.Timer
	closed   bool

	done chan struct{}
	wg   sync.WaitGroup
}

// WatchFile watches path. Its parent directory is created if missing so the
// file can appear later.
func WatchFile(path string) (*FileWatcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	fw := &FileWatcher{
		name:    filepath.Base(path),
		watcher: watcher,
		changes: make(chan struct{}, 1),
		log:     logging.Component("watcher"),
		done:    make(chan struct{}),
	}

	fw.wg.Add(1)
	go fw.run()

	return fw, nil
}

// Changes receives a value after the file changes. It is never closed.
func (fw *FileWatcher) Changes() <-chan struct{} {
	return fw.changes
}

// Close stops watching.
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true
	if fw.debounce != nil {
		fw.debounce.Stop()
	}
	fw.mu.Unlock()

	close(fw.done)
	err := fw.watcher.Close()
	fw.wg.Wait()
	return err
}

func (fw *FileWatcher) run() {
	defer fw.wg.Done()

	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.log.Debug().Err(err).Msg("watch error")
		}
	}
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != fw.name {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}
	if fw.debounce != nil {
		fw.debounce.Stop()
	}
	fw.debounce = time.AfterFunc(debounceDelay, fw.signal)
}

func (fw *FileWatcher) signal() {
	select {
	case fw.changes <- struct{}{}:
	default:
	}
}
