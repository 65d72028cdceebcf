package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verakore/mojifix/internal/adapters/outbound/tui"
)

func newBackupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backups",
		Short: "Manage backups left by repair",
		Long:  "List or prune the <file>.backup_<YYYYMMDD_HHMMSS> copies created before each repair.",
	}
	cmd.AddCommand(newBackupsListCmd())
	cmd.AddCommand(newBackupsPruneCmd())
	return cmd
}

func newBackupsListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List backups, oldest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backups, err := newBackupService().List(dirArg(args))
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, backups)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderBackups(backups))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newBackupsPruneCmd() *cobra.Command {
	var (
		jsonOutput bool
		dryRun     bool
		olderThan  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "prune [dir]",
		Short: "Delete backups older than the retention period",
		Long: "Delete backups whose timestamp is older than --older-than. Without the flag, " +
			"backup_retention_days from .mojifix.yaml is used (default 30 days).",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newBackupService().Prune(dirArg(args), olderThan, dryRun)
			if err != nil {
				return fmt.Errorf("prune failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPrune(report))
			}

			if len(report.Errors) > 0 {
				return fmt.Errorf("could not remove %d backups", len(report.Errors))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List what would be removed without deleting")
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Remove backups older than this (e.g. 720h); defaults to the configured retention")

	return cmd
}
