package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Saxenaa218/currency-conversion-test/internal/infra/fsworkspace"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter currency-detect.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			res, err := usecase.NewInitConfig(fsworkspace.NewInitializer()).Execute(root, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Initialized %s\n", root)
			for _, f := range res.Written {
				fmt.Fprintf(out, "  wrote   %s\n", f)
			}
			for _, f := range res.Skipped {
				fmt.Fprintf(out, "  kept    %s (use --force to overwrite)\n", f)
			}
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return c
}
