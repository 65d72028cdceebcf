package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verakore/mojifix/internal/adapters/outbound/gitinfo"
	"github.com/verakore/mojifix/internal/adapters/outbound/tui"
	"github.com/verakore/mojifix/internal/domain"
)

func newRepairCmd() *cobra.Command {
	var (
		jsonOutput bool
		dryRun     bool
		skipDirty  bool
		include    []string
	)

	cmd := &cobra.Command{
		Use:     "repair [dir]",
		Aliases: []string{"fix"},
		Short:   "Replace mojibake with numeric character references",
		Long: "Repair every matching file directly inside dir (default: current directory). " +
			"Each modified file is backed up as <file>.backup_<YYYYMMDD_HHMMSS> before being rewritten atomically.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newRepairService()
			if err != nil {
				return err
			}

			dir := dirArg(args)
			if skipDirty && !gitinfo.New().IsGitRepo(dir) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: not inside a git repository; --skip-dirty has no effect")
			}

			report, err := svc.RepairDir(dir, domain.RepairOptions{
				DryRun:    dryRun,
				SkipDirty: skipDirty,
				Include:   include,
			})
			if err != nil {
				return fmt.Errorf("repair failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				renderRepair(cmd, report)
			}

			if report.FilesFailed > 0 {
				return fmt.Errorf("%d of %d files: %w", report.FilesFailed, report.FilesProcessed, domain.ErrRepairFailed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would change without writing anything")
	cmd.Flags().BoolVar(&skipDirty, "skip-dirty", false, "Skip files with uncommitted git changes")
	cmd.Flags().StringSliceVar(&include, "include", nil, "File name glob to repair (repeatable; overrides config)")

	return cmd
}

func renderRepair(cmd *cobra.Command, report *domain.RepairReport) {
	out := cmd.OutOrStdout()
	if len(report.Results) == 0 {
		fmt.Fprint(out, tui.RenderNoFiles(report.Dir, report.Include))
		return
	}
	fmt.Fprint(out, tui.RenderRepairHeader(report.DryRun))
	for _, res := range report.Results {
		fmt.Fprint(out, tui.RenderFixResult(res))
	}
	fmt.Fprint(out, tui.RenderRepairSummary(report))
}
