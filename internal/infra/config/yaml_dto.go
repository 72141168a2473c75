package config

// YAMLConfig mirrors currency-detect.yaml. Pointers and empty strings mean
// "keep the default".
type YAMLConfig struct {
	CurrencyDetect YAMLCurrencyDetect `yaml:"currency_detect"`
}

type YAMLCurrencyDetect struct {
	Detection   YAMLDetection   `yaml:"detection"`
	Lookup      YAMLLookup      `yaml:"lookup"`
	Preferences YAMLPreferences `yaml:"preferences"`
	Locale      YAMLLocale      `yaml:"locale"`
	Tables      YAMLTables      `yaml:"tables"`
	Server      YAMLServer      `yaml:"server"`
}

type YAMLDetection struct {
	Concurrent *bool `yaml:"concurrent"`
}

type YAMLLookup struct {
	Timeout  string `yaml:"timeout"`
	IPURL    string `yaml:"ip_url"`
	IPField  string `yaml:"ip_field"`
	GeoURL   string `yaml:"geo_url"`
	GeoField string `yaml:"geo_field"`
}

type YAMLPreferences struct {
	File   string `yaml:"file"`
	Cookie string `yaml:"cookie"`
}

type YAMLLocale struct {
	Currency  string   `yaml:"currency"`
	Languages []string `yaml:"languages"`
	Timezone  string   `yaml:"timezone"`
}

type YAMLTables struct {
	Countries map[string]string `yaml:"countries"`
	Symbols   map[string]string `yaml:"symbols"`
	Timezones map[string]string `yaml:"timezones"`
}

type YAMLServer struct {
	Addr     string `yaml:"addr"`
	GameURL  string `yaml:"game_url"`
	EmbedURL string `yaml:"embed_url"`
}
