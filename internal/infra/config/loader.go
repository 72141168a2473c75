package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// FileName is the config file searched for by the workspace finder.
const FileName = "currency-detect.yaml"

// Load reads path and maps it over domain.DefaultConfig. Unknown keys are
// rejected so a misspelt setting does not silently fall back to its default.
// An empty file yields the defaults.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.DefaultConfig(), &domain.OpError{Op: "config.load", Kind: kind, Path: path, Err: err}
	}

	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}

// LoadRoot loads FileName from root.
func LoadRoot(root string) (domain.Config, error) {
	return Load(filepath.Join(root, FileName))
}
