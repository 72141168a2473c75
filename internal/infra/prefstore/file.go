// Package prefstore holds the preference stores read by the
// stored-preference probe.
package prefstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// FileStore keeps preferences as a flat JSON object on disk. A missing
// file is an empty store.
type FileStore struct {
	path string
	mu   sync.Mutex
}

var (
	_ ports.PreferenceStore  = (*FileStore)(nil)
	_ ports.PreferenceWriter = (*FileStore)(nil)
)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Lookup(_ context.Context, key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// All returns every stored value.
func (s *FileStore) All(_ context.Context) (map[string]string, error) {
	return s.load()
}

// Save merges values into the file. Empty values delete their key.
func (s *FileStore) Save(ctx context.Context, values map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range values {
		if v == "" {
			delete(current, k)
			continue
		}
		current[k] = v
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "prefstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	b, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "prefstore.marshal",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	// tmp then rename, so watchers never see a half-written file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o600); err != nil {
		return &domain.OpError{
			Op:   "prefstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "prefstore.rename",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &domain.OpError{
			Op:   "prefstore.read",
			Kind: domain.KindExecution,
			Path: s.path,
			Err:  err,
		}
	}

	values := map[string]string{}
	if len(b) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, &domain.OpError{
			Op:   "prefstore.decode",
			Kind: domain.KindInvalidConfig,
			Path: s.path,
			Err:  err,
		}
	}
	return values, nil
}
