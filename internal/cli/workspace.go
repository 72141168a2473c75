package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/config"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/geoip"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/httpclient"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/prefstore"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/workspacefinder"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
	"github.com/Saxenaa218/currency-conversion-test/internal/probe"
)

// workspaceCtx is everything a command needs, built from the config.
type workspaceCtx struct {
	root    string
	cfgPath string // empty when running on defaults
	cfg     domain.Config

	tables   *domain.ReferenceTables
	locale   ports.LocaleSource
	prefs    ports.PreferenceStore
	prefFile *prefstore.FileStore
}

// loadWorkspace resolves the config: an explicit --config path must exist;
// otherwise currency-detect.yaml is searched upward and defaults apply when
// none is found.
func loadWorkspace(configFlag string) (*workspaceCtx, error) {
	root, cfgPath, err := resolveConfig(configFlag)
	if err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return nil, err
		}
	}

	ws := &workspaceCtx{
		root:    root,
		cfgPath: cfgPath,
		cfg:     cfg,
		tables:  domain.NewReferenceTables(cfg.Tables),
		locale: hostlocale.NewLayered(hostlocale.NewEnv(), hostlocale.Overrides{
			Currency:  cfg.Locale.Currency,
			Languages: cfg.Locale.Languages,
			Timezone:  cfg.Locale.Timezone,
		}),
		prefFile: prefstore.NewFileStore(resolvePath(root, cfg.Preferences.File)),
	}

	ws.prefs = ws.prefFile
	if cfg.Preferences.Cookie != "" {
		cookies, err := prefstore.NewCookieStore(cfg.Preferences.Cookie)
		if err != nil {
			return nil, err
		}
		ws.prefs = cookies
	}

	return ws, nil
}

// probes builds the five detection methods over the workspace adapters.
func (ws *workspaceCtx) probes() []ports.Probe {
	exec := httpclient.NewExecutor(httpclient.WithTimeout(ws.cfg.Lookup.Timeout))
	return []ports.Probe{
		probe.NewStoredPreference(ws.prefs),
		probe.NewRuntimeCurrency(ws.locale),
		probe.NewLanguageTags(ws.locale, ws.tables),
		probe.NewTimezone(ws.locale, ws.tables),
		probe.NewIPGeolocation(
			geoip.NewIPLookup(exec, ws.cfg.Lookup.IPURL, ws.cfg.Lookup.IPField),
			geoip.NewCountryLookup(exec, ws.cfg.Lookup.GeoURL, ws.cfg.Lookup.GeoField),
			ws.tables,
			probe.WithLookupTimeout(ws.cfg.Lookup.Timeout),
		),
	}
}

func resolveConfig(configFlag string) (root, cfgPath string, err error) {
	if p := strings.TrimSpace(configFlag); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", "", fmt.Errorf("invalid config path: %w", err)
		}
		if !fileExists(abs) {
			return "", "", &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		return filepath.Dir(abs), abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("get working directory: %w", err)
	}

	found, path, ferr := workspacefinder.NewFinder().FindConfig(wd)
	if ferr != nil {
		if domain.IsKind(ferr, domain.KindNotFound) {
			return wd, "", nil
		}
		return "", "", ferr
	}
	return found, path, nil
}

// resolvePath anchors relative paths at the config root.
func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
