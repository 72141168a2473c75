package tui

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func renderPrices(tables *domain.ReferenceTables, cur domain.CurrencyCode) string {
	parts := make([]string, 0, len(domain.SamplePrices))
	for _, amount := range domain.SamplePrices {
		parts = append(parts, tables.FormatPrice(amount, cur))
	}
	return strings.Join(parts, "   ")
}

// outcomeSummary is the one-line description shown in the probe list.
func outcomeSummary(o domain.ProbeOutcome) string {
	if !o.OK() {
		return fmt.Sprintf("%s · %dms", o.Reason(), o.Elapsed.Milliseconds())
	}
	country, currency := string(o.Country()), string(o.Currency())
	if country == "" {
		country = "–"
	}
	if currency == "" {
		currency = "–"
	}
	return fmt.Sprintf("%s / %s · %dms", country, currency, o.Elapsed.Milliseconds())
}

func renderOutcomeDetails(o domain.ProbeOutcome) string {
	var b strings.Builder

	b.WriteString("Method: ")
	b.WriteString(o.Method.Label())
	b.WriteString("\n")
	if o.OK() {
		fmt.Fprintf(&b, "Result: %s / %s\n", o.Country(), o.Currency())
	} else {
		b.WriteString("Error: ")
		b.WriteString(o.Reason())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Elapsed: %dms\n\n", o.Elapsed.Milliseconds())

	ev := o.Evidence()
	b.WriteString("Evidence:\n")
	if len(ev) == 0 {
		b.WriteString("  (none)\n")
		return b.String()
	}
	for _, k := range slices.Sorted(maps.Keys(ev)) {
		b.WriteString("  - ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fmt.Sprint(ev[k]))
		b.WriteString("\n")
	}
	return b.String()
}

func renderHost(h hostlocale.Snapshot) string {
	value := func(s string) string {
		if s == "" {
			return "(unknown)"
		}
		return s
	}
	var b strings.Builder
	b.WriteString("Language:  " + value(h.Language) + "\n")
	b.WriteString("Languages: " + value(strings.Join(h.Languages, ", ")) + "\n")
	b.WriteString("Timezone:  " + value(h.Timezone) + "\n")
	b.WriteString("Currency:  " + value(h.Currency))
	return b.String()
}
