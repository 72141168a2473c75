package template

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	return render(input, vars, func(s string) string { return s })
}

// RenderURL is RenderString with every substituted value path-escaped, so
// a value can never introduce a new path segment or query.
func RenderURL(input string, vars map[string]string) (string, error) {
	out, err := render(input, vars, url.PathEscape)
	if err != nil {
		return "", err
	}
	if _, err := url.Parse(out); err != nil {
		return "", &domain.OpError{
			Op:   "template.render",
			Kind: domain.KindInvalidConfig,
			Path: input,
			Err:  err,
		}
	}
	return out, nil
}

func render(input string, vars map[string]string, escape func(string) string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", invalid(input, errors.New("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", invalid(input, errors.New("empty template expression"))
		}

		value, ok := vars[key]
		if !ok {
			return "", invalid(input, fmt.Errorf("missing variable %q", key))
		}

		out.WriteString(escape(value))
		rest = rest[end+2:]
	}
}

func invalid(input string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Path: input,
		Err:  err,
	}
}
