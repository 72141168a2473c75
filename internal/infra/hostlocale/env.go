// Package hostlocale reads the locale facts of the host process: POSIX
// locale variables, the LANGUAGE list, and the configured timezone.
package hostlocale

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

const (
	EnvTimezone  = "CURRENCY_DETECT_TZ"
	EnvLanguages = "CURRENCY_DETECT_LANGUAGES"
)

const localtimePath = "/etc/localtime"

// Env is a LocaleSource backed by the process environment.
type Env struct {
	getenv    func(string) string
	readlink  func(string) (string, error)
	localZone func() string
}

var _ ports.LocaleSource = (*Env)(nil)

type Option func(*Env)

// WithGetenv replaces os.Getenv, mainly for tests.
func WithGetenv(fn func(string) string) Option {
	return func(e *Env) { e.getenv = fn }
}

// WithReadlink replaces os.Readlink for the /etc/localtime lookup.
func WithReadlink(fn func(string) (string, error)) Option {
	return func(e *Env) { e.readlink = fn }
}

// WithLocalZone replaces the time.Local name used as the last resort.
func WithLocalZone(fn func() string) Option {
	return func(e *Env) { e.localZone = fn }
}

func NewEnv(opts ...Option) *Env {
	e := &Env{
		getenv:    os.Getenv,
		readlink:  os.Readlink,
		localZone: func() string { return time.Local.String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// DefaultCurrency derives the currency from the region of the monetary
// locale. A locale without an explicit region yields "".
func (e *Env) DefaultCurrency() (string, error) {
	tag, ok := e.localeTag("LC_ALL", "LC_MONETARY", "LANG")
	if !ok {
		return "", nil
	}
	region, conf := tag.Region()
	if conf != language.Exact {
		return "", nil
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", nil
	}
	return unit.String(), nil
}

// PreferredLanguages returns BCP 47 tags, most preferred first. An explicit
// override wins, then the GNU LANGUAGE list, then the messages locale.
func (e *Env) PreferredLanguages() ([]string, error) {
	if raw := strings.TrimSpace(e.getenv(EnvLanguages)); raw != "" {
		return parseList(raw, ","), nil
	}
	if raw := strings.TrimSpace(e.getenv("LANGUAGE")); raw != "" {
		if tags := parseList(raw, ":"); len(tags) > 0 {
			return tags, nil
		}
	}
	if tag, ok := e.localeTag("LC_ALL", "LC_MESSAGES", "LANG"); ok {
		return []string{tag.String()}, nil
	}
	return nil, nil
}

// Timezone returns the IANA zone name, or "" when only an anonymous zone
// is known.
func (e *Env) Timezone() (string, error) {
	for _, key := range []string{EnvTimezone, "TZ"} {
		if tz := strings.TrimPrefix(strings.TrimSpace(e.getenv(key)), ":"); tz != "" {
			return zoneName(tz), nil
		}
	}
	if target, err := e.readlink(localtimePath); err == nil {
		if tz := zoneName(target); tz != "" {
			return tz, nil
		}
	}
	if tz := e.localZone(); tz != "" && tz != "Local" && tz != "UTC" {
		return tz, nil
	}
	return "", nil
}

// localeTag returns the first parseable locale among keys, honouring POSIX
// precedence (the first non-empty variable decides).
func (e *Env) localeTag(keys ...string) (language.Tag, bool) {
	for _, key := range keys {
		raw := strings.TrimSpace(e.getenv(key))
		if raw == "" {
			continue
		}
		return ParsePOSIX(raw)
	}
	return language.Und, false
}

// ParsePOSIX converts a POSIX locale such as "pt_BR.UTF-8@euro" to a
// language tag. "C" and "POSIX" carry no language.
func ParsePOSIX(raw string) (language.Tag, bool) {
	s := raw
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(s)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

func parseList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if tag, ok := ParsePOSIX(part); ok {
			out = append(out, tag.String())
		}
	}
	return out
}

// zoneName strips everything up to the zoneinfo directory from a path.
// Plain names pass through unchanged.
func zoneName(s string) string {
	const marker = "zoneinfo/"
	if i := strings.LastIndex(s, marker); i >= 0 {
		return s[i+len(marker):]
	}
	if filepath.IsAbs(s) {
		return ""
	}
	return s
}
