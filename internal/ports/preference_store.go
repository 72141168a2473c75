package ports

import "context"

// Keys written by the component that records a confirmed preference.
const (
	PreferenceCountryKey  = "user-country"
	PreferenceCurrencyKey = "user-currency"
)

// PreferenceStore is a read-only key/value source for stored preferences.
type PreferenceStore interface {
	Lookup(ctx context.Context, key string) (value string, ok bool, err error)
}

// PreferenceWriter persists preferences (e.g., the file-backed store).
type PreferenceWriter interface {
	Save(ctx context.Context, values map[string]string) error
}
