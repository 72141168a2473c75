package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/infra/httpapi"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/logger"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the oEmbed endpoint for the embeddable game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			cfg := ws.cfg.Server
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cmd.Printf("Serving oEmbed for %s on %s\n", cfg.GameURL, cfg.Addr)
			return httpapi.NewServer(cfg, logger.L()).ListenAndServe(ctx)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
	return c
}
