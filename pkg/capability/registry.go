package capability

import (
	"context"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/osakit/osakit/pkg/logger"
)

// Registry serves the current capability Set and can reload it when the
// table files change on disk. Tables drift with host application updates,
// so a long-running caller keeps a Registry rather than a bare Set.
//
// Reload swaps an immutable Set pointer; readers always see a complete,
// consistent snapshot and need no locking.
type Registry struct {
	dir     string
	current atomic.Pointer[Set]
}

// NewRegistry loads the tables under dir and returns a registry serving
// them. Loading is strict: a registry is never created over a broken set.
func NewRegistry(dir string) (*Registry, error) {
	set, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	r := &Registry{dir: dir}
	r.current.Store(set)
	return r, nil
}

// Tables returns the current snapshot.
func (r *Registry) Tables() *Set {
	return r.current.Load()
}

// Reload re-reads the table files. On failure the previous snapshot stays
// in place, so a half-edited file never takes a running process down.
func (r *Registry) Reload(ctx context.Context) error {
	set, err := LoadDir(r.dir)
	if err != nil {
		logger.G(ctx).WithError(err).WithField("dir", r.dir).Warn("capability table reload failed, keeping previous tables")
		return err
	}
	r.current.Store(set)
	logger.G(ctx).WithField("dir", r.dir).Debug("capability tables reloaded")
	return nil
}

// Watch blocks, reloading the tables whenever a file under the directory
// is written, created, renamed, or removed. Returns when the context is
// canceled or the underlying watcher fails.
func (r *Registry) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create capability table watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return errors.Wrapf(err, "failed to watch %s", r.dir)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// Editors save with rename dances; a failed reload keeps the
			// last good snapshot, so reloading eagerly is harmless.
			_ = r.Reload(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Warn("capability table watcher error")
		}
	}
}
