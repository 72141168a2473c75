package hostlocale

import (
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// Overrides pins individual locale facts. Empty fields fall through.
type Overrides struct {
	Currency  string
	Languages []string
	Timezone  string
}

// Layered answers from Overrides first and the base source otherwise.
type Layered struct {
	base ports.LocaleSource
	over Overrides
}

var _ ports.LocaleSource = (*Layered)(nil)

func NewLayered(base ports.LocaleSource, over Overrides) *Layered {
	return &Layered{base: base, over: over}
}

func (l *Layered) DefaultCurrency() (string, error) {
	if l.over.Currency != "" {
		return l.over.Currency, nil
	}
	if l.base == nil {
		return "", nil
	}
	return l.base.DefaultCurrency()
}

func (l *Layered) PreferredLanguages() ([]string, error) {
	if len(l.over.Languages) > 0 {
		return append([]string(nil), l.over.Languages...), nil
	}
	if l.base == nil {
		return nil, nil
	}
	return l.base.PreferredLanguages()
}

func (l *Layered) Timezone() (string, error) {
	if l.over.Timezone != "" {
		return l.over.Timezone, nil
	}
	if l.base == nil {
		return "", nil
	}
	return l.base.Timezone()
}
