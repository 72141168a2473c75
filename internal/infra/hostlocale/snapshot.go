package hostlocale

import (
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// Snapshot is what the host reported at one point in time, shown next to
// a detection report.
type Snapshot struct {
	Language  string   `json:"language,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Timezone  string   `json:"timezone,omitempty"`
	Currency  string   `json:"currency,omitempty"`
}

// TakeSnapshot reads src once. Read errors leave the field empty.
func TakeSnapshot(src ports.LocaleSource) Snapshot {
	var s Snapshot
	if src == nil {
		return s
	}
	if langs, err := src.PreferredLanguages(); err == nil && len(langs) > 0 {
		s.Languages = langs
		s.Language = langs[0]
	}
	if tz, err := src.Timezone(); err == nil {
		s.Timezone = tz
	}
	if cur, err := src.DefaultCurrency(); err == nil {
		s.Currency = cur
	}
	return s
}
