package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verakore/mojifix/internal/adapters/outbound/config"
	"github.com/verakore/mojifix/internal/adapters/outbound/filestore"
	"github.com/verakore/mojifix/internal/adapters/outbound/gitinfo"
	"github.com/verakore/mojifix/internal/adapters/outbound/lister"
	"github.com/verakore/mojifix/internal/application"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

func defaultTable() (*mojibake.Table, error) {
	table, err := mojibake.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("building default patterns: %w", err)
	}
	return table, nil
}

func newScanService() (*application.ScanService, error) {
	table, err := defaultTable()
	if err != nil {
		return nil, err
	}
	return application.NewScanService(lister.New(), filestore.New(), config.New(), table), nil
}

func newRepairService() (*application.RepairService, error) {
	table, err := defaultTable()
	if err != nil {
		return nil, err
	}
	return application.NewRepairService(lister.New(), filestore.New(), config.New(), gitinfo.New(), table), nil
}

func newBackupService() *application.BackupService {
	return application.NewBackupService(filestore.New(), config.New())
}

func dirArg(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "."
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
