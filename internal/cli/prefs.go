package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

func prefsCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "prefs",
		Short: "Manage the stored country/currency preference",
	}

	c.AddCommand(prefsSetCmd(a), prefsShowCmd(a), prefsClearCmd(a))
	return c
}

func prefsSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <country> [currency]",
		Short: "Store a preference (currency defaults to the country's)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			currency := ""
			if len(args) == 2 {
				currency = args[1]
			}

			c, cur, err := usecase.NewSavePreference(ws.prefFile, ws.tables).Execute(cmd.Context(), args[0], currency)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved %s/%s to %s\n", c, cur, ws.prefFile.Path())
			if ws.cfg.Preferences.Cookie != "" {
				fmt.Fprintln(out, "Note: preferences.cookie is set in the config, so the file is not read.")
			}
			return nil
		},
	}
}

func prefsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ws.cfg.Preferences.Cookie != "" {
				fmt.Fprintf(out, "Source: cookie (%s)\n", ws.cfg.Preferences.Cookie)
				return nil
			}

			values, err := ws.prefFile.All(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Source: %s\n", ws.prefFile.Path())
			if len(values) == 0 {
				fmt.Fprintln(out, "(no preference stored)")
				return nil
			}
			for _, k := range slices.Sorted(maps.Keys(values)) {
				fmt.Fprintf(out, "%s = %s\n", k, values[k])
			}
			return nil
		},
	}
}

func prefsClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(a.configPath)
			if err != nil {
				return err
			}
			if err := usecase.NewSavePreference(ws.prefFile, ws.tables).Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preference cleared")
			return nil
		},
	}
}
