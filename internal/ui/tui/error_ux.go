package tui

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

const genericMessage = "Unexpected error (see logs)"

var yamlLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// messageRule maps an OpError to a short toast. The first matching rule wins.
type messageRule struct {
	kind     domain.ErrorKind
	opPrefix string
	message  func(oe *domain.OpError) string
}

var messageRules = []messageRule{
	{domain.KindNotFound, "config.", fixed("Config not found")},
	{domain.KindInvalidConfig, "prefstore.", func(oe *domain.OpError) string {
		return "Preference file is corrupt: " + baseOr(oe.Path, "preferences")
	}},
	{domain.KindInvalidConfig, "", invalidConfig},
	{domain.KindExecution, "prefstore.watch", fixed("Preference watch stopped (see logs)")},
	{domain.KindHTTPStatus, "", lookupStatus},
	{domain.KindNetwork, "", fixed("Network problem (see logs)")},
}

func fixed(s string) func(*domain.OpError) string {
	return func(*domain.OpError) string { return s }
}

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if !errors.As(err, &oe) {
		return genericMessage
	}
	for _, r := range messageRules {
		if oe.Kind == r.kind && strings.HasPrefix(oe.Op, r.opPrefix) {
			return r.message(oe)
		}
	}
	return genericMessage
}

func invalidConfig(oe *domain.OpError) string {
	base := baseOr(oe.Path, "config")
	if m := yamlLine.FindStringSubmatch(oe.Error()); len(m) == 2 {
		return "Invalid YAML at " + base + " line " + m[1]
	}
	if strings.Contains(strings.ToLower(oe.Error()), "yaml:") {
		return "Invalid YAML at " + base
	}
	return "Invalid config: " + base
}

func lookupStatus(oe *domain.OpError) string {
	code, ok := domain.StatusCode(oe)
	switch {
	case !ok:
		return "Network problem (see logs)"
	case code == http.StatusTooManyRequests:
		return "Location lookup rate limited, try again later"
	default:
		return fmt.Sprintf("Location lookup failed: %d", code)
	}
}

func baseOr(path, fallback string) string {
	if strings.TrimSpace(path) == "" {
		return fallback
	}
	return filepath.Base(path)
}
