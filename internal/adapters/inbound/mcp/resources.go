package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all mojifix MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *services) {
	// 1. mojifix://patterns - effective pattern table
	s.AddResource(
		mcplib.NewResource(
			"mojifix://patterns",
			"Patterns",
			mcplib.WithResourceDescription("Effective mojibake pattern table in match order"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePatternsResource(svc),
	)

	// 2. mojifix://backups - backups left by repairs
	s.AddResource(
		mcplib.NewResource(
			"mojifix://backups",
			"Backups",
			mcplib.WithResourceDescription("Backups created by repairs in the served directory, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBackupsResource(svc),
	)
}

func handlePatternsResource(svc *services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		table, err := svc.scan.Patterns(svc.root)
		if err != nil {
			return nil, err
		}
		return jsonResource("mojifix://patterns", table.Entries())
	}
}

func handleBackupsResource(svc *services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		backups, err := svc.backups.List(svc.root)
		if err != nil {
			return nil, err
		}
		return jsonResource("mojifix://backups", backups)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
