package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/config"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

const op = "workspacefinder.find"

// Finder searches upward from a start directory for the config file.
type Finder struct {
	// Names are tried in order in each directory.
	Names []string
	// StopAt, when set, is the last directory searched.
	StopAt string
}

func NewFinder() *Finder {
	return &Finder{Names: []string{config.FileName, "currency-detect.yml"}}
}

var _ ports.ConfigLocator = (*Finder)(nil)

// FindRoot returns the directory holding the config file.
func (f *Finder) FindRoot(startDir string) (string, error) {
	root, _, err := f.FindConfig(startDir)
	return root, err
}

// FindConfig returns the directory holding the config file and the file itself.
// A file path as startDir is searched from its directory.
func (f *Finder) FindConfig(startDir string) (root, path string, err error) {
	if startDir == "" {
		return "", "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("start directory is empty")}
	}

	cur, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, statErr := os.Stat(cur); statErr == nil && !info.IsDir() {
		cur = filepath.Dir(cur)
	}

	stop := ""
	if f.StopAt != "" {
		if stop, err = filepath.Abs(f.StopAt); err != nil {
			return "", "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: f.StopAt, Err: err}
		}
	}

	names := f.Names
	if len(names) == 0 {
		names = []string{config.FileName}
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(cur, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return cur, candidate, nil
			}
		}

		parent := filepath.Dir(cur)
		if parent == cur || cur == stop {
			return "", "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
		}
		cur = parent
	}
}
