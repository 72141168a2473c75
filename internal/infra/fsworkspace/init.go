package fsworkspace

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/logger"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// StateDir holds logs and the preference file; it is never committed.
const StateDir = ".currency-detect"

const gitignoreHeader = "# currency-detect"

// Initializer writes the starter config and the local state directory.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

func (i *Initializer) Init(root string, force bool) (ports.InitResult, error) {
	var res ports.InitResult
	root = filepath.Clean(root)

	logs := filepath.Join(root, filepath.FromSlash(logger.Dir))
	if err := os.MkdirAll(logs, 0o755); err != nil {
		return res, &domain.OpError{Op: "fsworkspace.mkdir", Kind: domain.KindExecution, Path: logs, Err: err}
	}

	changed, err := ensureGitignore(root, StateDir+"/")
	if err != nil {
		return res, &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}
	if changed {
		res.Written = append(res.Written, ".gitignore")
	}

	names, err := fs.Glob(templatesFS, "templates/*")
	if err != nil {
		return res, err
	}
	for _, name := range names {
		rel := path.Base(name)
		dst := filepath.Join(root, rel)

		if _, statErr := os.Stat(dst); statErr == nil && !force {
			res.Skipped = append(res.Skipped, rel)
			continue
		}

		b, err := fs.ReadFile(templatesFS, name)
		if err != nil {
			return res, err
		}
		if err := writeAtomic(dst, b); err != nil {
			return res, &domain.OpError{Op: "fsworkspace.write", Kind: domain.KindExecution, Path: dst, Err: err}
		}
		res.Written = append(res.Written, rel)
	}

	return res, nil
}

func writeAtomic(dst string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), dst)
}

// ensureGitignore appends entry under the currency-detect header unless a
// line already ignores it. It reports whether the file changed.
func ensureGitignore(root, entry string) (bool, error) {
	p := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(p)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}

	existing := string(b)
	lines := strings.Split(existing, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	bare := strings.TrimSuffix(entry, "/")
	if slices.Contains(lines, entry) || slices.Contains(lines, bare) || slices.Contains(lines, "/"+entry) {
		return false, nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	if !slices.Contains(lines, gitignoreHeader) {
		out.WriteString(gitignoreHeader + "\n")
	}
	out.WriteString(entry + "\n")

	return true, os.WriteFile(p, []byte(out.String()), 0o644)
}
