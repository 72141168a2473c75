package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/logger"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

func formatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "format <amount> [currency]",
		Short: "Format an amount; without a currency the detected one is used",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}

			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			var cur domain.CurrencyCode
			if len(args) == 2 {
				cur = domain.NormalizeCurrency(args[1])
				if !domain.ValidCurrency(cur) {
					return fmt.Errorf("invalid currency code %q", args[1])
				}
			} else {
				report := usecase.NewDetectCurrency(ws.probes(),
					usecase.WithSequential(!ws.cfg.Detection.Concurrent),
					usecase.WithLogger(logger.L()),
				).Execute(cmd.Context())
				cur = report.Currency
			}

			fmt.Fprintln(cmd.OutOrStdout(), ws.tables.FormatPrice(amount, cur))
			return nil
		},
	}
}
