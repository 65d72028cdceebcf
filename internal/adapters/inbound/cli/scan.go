package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verakore/mojifix/internal/adapters/outbound/tui"
	"github.com/verakore/mojifix/internal/domain"
)

func newScanCmd() *cobra.Command {
	var (
		jsonOutput bool
		include    []string
	)

	cmd := &cobra.Command{
		Use:     "scan [dir]",
		Aliases: []string{"check"},
		Short:   "Report mojibake in a directory",
		Long: "Scan every matching file directly inside dir (default: current directory) and report " +
			"each mis-decoded sequence with its line number. Exits 1 when any issue is found.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newScanService()
			if err != nil {
				return err
			}

			report, err := svc.ScanDir(dirArg(args), domain.ScanOptions{Include: include})
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				renderScan(cmd, report)
			}

			if report.HasFindings() {
				return domain.ErrFindings
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringSliceVar(&include, "include", nil, "File name glob to scan (repeatable; overrides config)")

	return cmd
}

func renderScan(cmd *cobra.Command, report *domain.ScanReport) {
	out := cmd.OutOrStdout()
	if len(report.Files) == 0 {
		fmt.Fprint(out, tui.RenderNoFiles(report.Dir, report.Include))
		return
	}
	for _, fs := range report.Files {
		fmt.Fprint(out, tui.RenderFileScan(fs))
	}
	fmt.Fprint(out, tui.RenderScanSummary(report))
}
