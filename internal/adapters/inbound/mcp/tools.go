package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/verakore/mojifix/internal/domain"
)

// registerTools registers all mojifix MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *services) {
	// 1. mojifix_scan
	s.AddTool(
		mcplib.NewTool("mojifix_scan",
			mcplib.WithDescription("Scan every matching file in the served directory for mojibake and return the findings as JSON"),
			mcplib.WithString("include", mcplib.Description("Comma-separated file name globs (default from .mojifix.yaml, or *.html)")),
		),
		handleScan(svc),
	)

	// 2. mojifix_scan_file
	s.AddTool(
		mcplib.NewTool("mojifix_scan_file",
			mcplib.WithDescription("Scan a single file for mojibake"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the file, relative to the served directory"),
			),
		),
		handleScanFile(svc),
	)

	// 3. mojifix_repair
	s.AddTool(
		mcplib.NewTool("mojifix_repair",
			mcplib.WithDescription("Replace mojibake with numeric character references, backing up each modified file first"),
			mcplib.WithBoolean("dry_run", mcplib.Description("Report what would change without writing anything")),
			mcplib.WithBoolean("skip_dirty", mcplib.Description("Skip files with uncommitted git changes")),
			mcplib.WithString("include", mcplib.Description("Comma-separated file name globs")),
		),
		handleRepair(svc),
	)

	// 4. mojifix_patterns
	s.AddTool(
		mcplib.NewTool("mojifix_patterns",
			mcplib.WithDescription("Returns the effective pattern table in match order"),
		),
		handlePatterns(svc),
	)
}

func handleScan(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		include, _ := request.GetArguments()["include"].(string)

		report, err := svc.scan.ScanDir(svc.root, domain.ScanOptions{Include: splitAndTrim(include)})
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleScanFile(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		path, err := resolve(svc.root, file)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		result, err := svc.scan.ScanFile(path)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleRepair(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()
		dryRun, _ := args["dry_run"].(bool)
		skipDirty, _ := args["skip_dirty"].(bool)
		include, _ := args["include"].(string)

		report, err := svc.repair.RepairDir(svc.root, domain.RepairOptions{
			DryRun:    dryRun,
			SkipDirty: skipDirty,
			Include:   splitAndTrim(include),
		})
		if err != nil {
			return errorResult(fmt.Sprintf("repair failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handlePatterns(svc *services) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		table, err := svc.scan.Patterns(svc.root)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(table.Entries())
	}
}

// resolve joins file onto root and rejects paths that leave root, either
// lexically or through a symlink.
func resolve(root, file string) (string, error) {
	if filepath.IsAbs(file) {
		return "", fmt.Errorf("file must be relative to the served directory: %s", file)
	}
	path := filepath.Join(root, file)
	if !within(root, path) {
		return "", fmt.Errorf("file is outside the served directory: %s", file)
	}

	realRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", fmt.Errorf("resolving served directory: %w", err)
	}
	realPath, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", file, err)
	}
	if !within(realRoot, realPath) {
		return "", fmt.Errorf("file is outside the served directory: %s", file)
	}
	return path, nil
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
