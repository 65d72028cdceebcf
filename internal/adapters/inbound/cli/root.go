package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mojifix",
		Short: "Find and fix mojibake in text files",
		Long: "mojifix scans text files for UTF-8 characters that were mis-decoded as Windows-1252 " +
			"(such as \"â€™\" instead of \"’\") and replaces them with numeric character references.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newScanCmd())
	cmd.AddCommand(newRepairCmd())
	cmd.AddCommand(newPatternsCmd())
	cmd.AddCommand(newBackupsCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
