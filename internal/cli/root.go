package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/logger"
	"github.com/Saxenaa218/currency-conversion-test/internal/ui/tui"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

// app carries the persistent flags and the logger lifetime.
type app struct {
	debug      bool
	configPath string
	cleanup    func() error
}

func Execute() {
	a := &app{}
	cmd := newRootCmd(a)
	err := cmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "currency-detect",
		Short:        "Best-effort country and currency detection",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.setupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Detector: usecase.NewDetectCurrency(ws.probes(),
					usecase.WithSequential(!ws.cfg.Detection.Concurrent),
					usecase.WithLogger(logger.L()),
				),
				Tables:     ws.tables,
				Host:       hostlocale.TakeSnapshot(ws.locale),
				ConfigPath: ws.cfgPath,
				Logger:     logger.L(),
				Debug:      a.debug,
			}
			if ws.cfg.Preferences.Cookie == "" {
				deps.WatchPrefs = ws.prefFile.Watch
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose logging to .currency-detect/logs/currency-detect.log")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to currency-detect.yaml (default: search upward from the working directory)")

	cmd.AddCommand(
		detectCmd(a),
		formatCmd(a),
		prefsCmd(a),
		serveCmd(a),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging opens the log file next to the config, or in the working
// directory when there is no config. Logging problems never stop a command.
func (a *app) setupLogging() {
	root, _, err := resolveConfig(a.configPath)
	if err != nil {
		root, _ = os.Getwd()
	}

	cfg := logger.Config{Root: root, Debug: a.debug}.FromEnv(os.Getenv)
	cleanup, err := logger.Setup(cfg)
	if err == nil {
		a.cleanup = cleanup
	}
}

func (a *app) close() {
	if a.cleanup != nil {
		_ = a.cleanup()
		a.cleanup = nil
	}
}
