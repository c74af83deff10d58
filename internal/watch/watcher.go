// Package watch reloads dataset assets when they change on disk.
package watch

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/handiism/minoise/internal/logging"
	"github.com/handiism/minoise/internal/model"
	"go.uber.org/zap"
)

// DefaultDebounce collapses bursts of writes from editors and copy tools.
const DefaultDebounce = 300 * time.Millisecond

// ChangeFunc is called with the projection whose asset changed.
type ChangeFunc func(p model.Projection)

// AssetWatcher watches a data directory for changes to hierarchy assets.
//
// Only files named like a projection asset are considered. Changes to the
// same asset within the debounce period produce one notification.
type AssetWatcher struct {
	log      *zap.SugaredLogger
	dir      string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange ChangeFunc

	mu     sync.Mutex
	timers map[model.Projection]*time.Timer
	done   chan struct{}
}

// NewAssetWatcher starts watching dir. A non-positive debounce means
// DefaultDebounce.
func NewAssetWatcher(dir string, debounce time.Duration, onChange ChangeFunc) (*AssetWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	aw := &AssetWatcher{
		log:      logging.Named("watch"),
		dir:      dir,
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		timers:   make(map[model.Projection]*time.Timer),
		done:     make(chan struct{}),
	}
	go aw.watchLoop()

	aw.log.Infow("Watching dataset directory", "dir", dir, "debounce", debounce)
	return aw, nil
}

func (aw *AssetWatcher) watchLoop() {
	defer close(aw.done)
	for {
		select {
		case event, ok := <-aw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			p, ok := model.ProjectionForAsset(event.Name)
			if !ok {
				continue
			}
			aw.log.Debugw("Dataset asset changed", "file", event.Name, "op", event.Op.String())
			aw.schedule(p)

		case err, ok := <-aw.watcher.Errors:
			if !ok {
				return
			}
			aw.log.Warnw("Dataset watcher error", "error", err)
		}
	}
}

func (aw *AssetWatcher) schedule(p model.Projection) {
	aw.mu.Lock()
	defer aw.mu.Unlock()

	if t, ok := aw.timers[p]; ok {
		t.Stop()
	}
	aw.timers[p] = time.AfterFunc(aw.debounce, func() {
		aw.mu.Lock()
		delete(aw.timers, p)
		aw.mu.Unlock()

		aw.log.Infow("Dataset asset reload", "projection", p.String(), "dir", aw.dir)
		aw.onChange(p)
	})
}

// Close stops watching and cancels pending notifications.
func (aw *AssetWatcher) Close() error {
	err := aw.watcher.Close()
	<-aw.done

	aw.mu.Lock()
	for p, t := range aw.timers {
		t.Stop()
		delete(aw.timers, p)
	}
	aw.mu.Unlock()
	return err
}
