package mcp

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/verakore/mojifix/internal/adapters/outbound/config"
	"github.com/verakore/mojifix/internal/adapters/outbound/filestore"
	"github.com/verakore/mojifix/internal/adapters/outbound/gitinfo"
	"github.com/verakore/mojifix/internal/adapters/outbound/lister"
	"github.com/verakore/mojifix/internal/application"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// services bundles the application services shared by tools and resources.
type services struct {
	root    string
	scan    *application.ScanService
	repair  *application.RepairService
	backups *application.BackupService
}

func newServices(root string) (*services, error) {
	table, err := mojibake.DefaultTable()
	if err != nil {
		return nil, fmt.Errorf("building default patterns: %w", err)
	}

	files := filestore.New()
	cfg := config.New()
	return &services{
		root:    root,
		scan:    application.NewScanService(lister.New(), files, cfg, table),
		repair:  application.NewRepairService(lister.New(), files, cfg, gitinfo.New(), table),
		backups: application.NewBackupService(files, cfg),
	}, nil
}

// NewMojifixMCPServer creates a new MCP server with all mojifix tools and
// resources registered. Every tool works inside root.
func NewMojifixMCPServer(root string) (*server.MCPServer, error) {
	svc, err := newServices(root)
	if err != nil {
		return nil, err
	}

	s := server.NewMCPServer(
		"mojifix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s, nil
}
