package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/logger"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

func detectCmd(a *app) *cobra.Command {
	var format string
	var sequential bool

	c := &cobra.Command{
		Use:   "detect",
		Short: "Run every detection method once and print the decision",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			uc := usecase.NewDetectCurrency(ws.probes(),
				usecase.WithSequential(sequential || !ws.cfg.Detection.Concurrent),
				usecase.WithLogger(logger.L()),
			)
			report := uc.Execute(cmd.Context())

			return printReport(cmd.OutOrStdout(), report, ws.tables, hostlocale.TakeSnapshot(ws.locale), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&sequential, "sequential", false, "Run the probes one after another instead of in parallel")
	return c
}

func checkFormat(format string) error {
	switch format {
	case "pretty", "json", "":
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

type reportPayload struct {
	Report domain.DetectionReport `json:"report"`
	Prices []string               `json:"prices"`
	Host   hostlocale.Snapshot    `json:"host"`
}

func samplePrices(tables *domain.ReferenceTables, cur domain.CurrencyCode) []string {
	out := make([]string, 0, len(domain.SamplePrices))
	for _, amount := range domain.SamplePrices {
		out = append(out, tables.FormatPrice(amount, cur))
	}
	return out
}

func printReport(w io.Writer, report domain.DetectionReport, tables *domain.ReferenceTables, host hostlocale.Snapshot, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reportPayload{
			Report: report,
			Prices: samplePrices(tables, report.Currency),
			Host:   host,
		})
	case "pretty", "":
		printPrettyReport(w, report, tables, host)
		return nil
	default:
		return checkFormat(format)
	}
}

func printPrettyReport(w io.Writer, report domain.DetectionReport, tables *domain.ReferenceTables, host hostlocale.Snapshot) {
	total := report.EndedAt.Sub(report.StartedAt)
	if report.StartedAt.IsZero() || report.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintf(w, "Country:    %s\n", report.Country)
	fmt.Fprintf(w, "Currency:   %s\n", report.Currency)
	fmt.Fprintf(w, "Prices:     %s\n", strings.Join(samplePrices(tables, report.Currency), "  "))
	fmt.Fprintf(w, "Duration:   %s\n", total.Round(time.Millisecond))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Probes (%d/%d succeeded):\n", report.Succeeded(), len(report.Outcomes))
	for _, o := range report.Outcomes {
		if o.OK() {
			fmt.Fprintf(w, "- [OK]   %-28s %s/%s (%dms)\n", o.Method.Label(), dash(string(o.Country())), dash(string(o.Currency())), o.Elapsed.Milliseconds())
			continue
		}
		fmt.Fprintf(w, "- [FAIL] %-28s %s (%dms)\n", o.Method.Label(), o.Reason(), o.Elapsed.Milliseconds())
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Host:")
	fmt.Fprintf(w, "  language:  %s\n", dash(host.Language))
	fmt.Fprintf(w, "  languages: %s\n", dash(strings.Join(host.Languages, ", ")))
	fmt.Fprintf(w, "  timezone:  %s\n", dash(host.Timezone))
	fmt.Fprintf(w, "  currency:  %s\n", dash(host.Currency))
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
