package ports

// LocaleSource exposes what the host runtime knows about the user's locale.
type LocaleSource interface {
	// DefaultCurrency is the currency resolved for the active locale, or "".
	DefaultCurrency() (string, error)
	// PreferredLanguages lists language tags, most preferred first.
	PreferredLanguages() ([]string, error)
	// Timezone is the IANA zone identifier, or "".
	Timezone() (string, error)
}
