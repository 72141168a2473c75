package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Saxenaa218/currency-conversion-test/internal/buildinfo"
)

// Dir is where the log file lives, relative to the config root.
const Dir = ".currency-detect/logs"

// FileName is the log file inside Dir.
const FileName = "currency-detect.log"

// Environment overrides, read by FromEnv.
const (
	EnvLevel = "CURRENCY_DETECT_LOG_LEVEL"
	EnvFile  = "CURRENCY_DETECT_LOG_FILE"
)

type Config struct {
	Root string
	// File overrides <Root>/Dir/FileName when set.
	File  string
	Level slog.Level
	// Debug forces LevelDebug and adds source locations.
	Debug bool
}

// FromEnv fills Level and File from the environment when they are set.
// Unknown level names are ignored.
func (c Config) FromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	if lvl, ok := parseLevel(getenv(EnvLevel)); ok {
		c.Level = lvl
	}
	if f := strings.TrimSpace(getenv(EnvFile)); f != "" {
		c.File = f
	}
	return c
}

func (c Config) path() string {
	if c.File != "" {
		return filepath.Clean(c.File)
	}
	root := c.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), filepath.FromSlash(Dir), FileName)
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu      sync.RWMutex
	current = discard()
)

func discard() sink {
	return sink{log: slog.New(slog.DiscardHandler)}
}

// Setup points the global logger at a JSON log file and returns the function
// that closes it. On failure the global logger discards everything.
func Setup(cfg Config) (func() error, error) {
	path := cfg.path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		swap(discard())
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		swap(discard())
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: utcTime,
	}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	l := slog.New(slog.NewJSONHandler(f, opts)).With("version", buildinfo.Version)
	swap(sink{log: l, file: f, path: path})

	l.Info("logger.initialized", "path", path, "level", opts.Level.Level().String())

	return func() error {
		old := swap(discard())
		if old.file == nil {
			return nil
		}
		return old.file.Close()
	}, nil
}

func swap(s sink) sink {
	mu.Lock()
	defer mu.Unlock()
	old := current
	current = s
	return old
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.path
}
