package prefstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// Watch calls onChange whenever the preference file is created, written,
// replaced or removed. It watches the parent directory so the atomic
// rename in Save is observed. Watch blocks until ctx is done.
func (s *FileStore) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return &domain.OpError{Op: "prefstore.watch", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	defer w.Close()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{Op: "prefstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
	}
	if err := w.Add(dir); err != nil {
		return &domain.OpError{Op: "prefstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	target := filepath.Clean(s.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
				onChange()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return &domain.OpError{Op: "prefstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}
}
