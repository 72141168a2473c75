package domain

import "time"

// Config represents the currency-detect configuration loaded from currency-detect.yaml.
type Config struct {
	Detection   DetectionConfig
	Lookup      LookupConfig
	Preferences PreferencesConfig
	Locale      LocaleConfig
	Tables      TableExtras
	Server      ServerConfig
}

type DetectionConfig struct {
	Concurrent bool
}

// LookupConfig describes the two IP geolocation services.
type LookupConfig struct {
	Timeout time.Duration

	IPURL   string
	IPField string // JSONPath into the IP service reply

	GeoURL   string // may contain {{ip}}
	GeoField string // JSONPath into the geo service reply
}

type PreferencesConfig struct {
	File   string
	Cookie string // raw Cookie header; takes precedence over File when set
}

// LocaleConfig overrides what the host reports. Empty fields fall through
// to the host environment.
type LocaleConfig struct {
	Currency  string
	Languages []string
	Timezone  string
}

type ServerConfig struct {
	Addr     string
	GameURL  string
	EmbedURL string
}

// DefaultConfig provides sane defaults if currency-detect.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Detection: DetectionConfig{Concurrent: true},
		Lookup: LookupConfig{
			Timeout:  5 * time.Second,
			IPURL:    "https://api.ipify.org?format=json",
			IPField:  "$.ip",
			GeoURL:   "https://ipapi.co/{{ip}}/json/",
			GeoField: "$.country_code",
		},
		Preferences: PreferencesConfig{
			File: ".currency-detect/preferences.json",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			GameURL:  "https://currency-conversion-test.onrender.com/game",
			EmbedURL: "https://currency-conversion-test.onrender.com/game-embed",
		},
	}
}
