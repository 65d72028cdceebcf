package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verakore/mojifix/internal/adapters/outbound/tui"
)

func newPatternsCmd() *cobra.Command {
	var (
		jsonOutput bool
		path       string
	)

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the patterns checked, in match order",
		Long:  "Print the effective pattern table for a directory: the built-in patterns minus disabled ones, with custom patterns first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newScanService()
			if err != nil {
				return err
			}

			table, err := svc.Patterns(path)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, table.Entries())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPatterns(table))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&path, "path", ".", "Directory whose .mojifix.yaml is applied")

	return cmd
}
