package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verakore/mojifix/internal/domain"
	"github.com/verakore/mojifix/internal/domain/mojibake"
)

const brokenPage = "<p>Wait â€” what?</p>\n<p>It's â€™</p>\n"

func setup(t *testing.T) (*services, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte(brokenPage), 0644))
	svc, err := newServices(dir)
	require.NoError(t, err)
	return svc, dir
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content")
	return tc.Text
}

func TestHandleScan(t *testing.T) {
	svc, _ := setup(t)

	res := call(t, handleScan(svc), nil)
	require.False(t, res.IsError)

	var report domain.ScanReport
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &report))
	assert.Equal(t, 2, report.TotalFindings)
}

func TestHandleScan_Include(t *testing.T) {
	svc, _ := setup(t)

	res := call(t, handleScan(svc), map[string]any{"include": "*.txt, *.md"})
	require.False(t, res.IsError)

	var report domain.ScanReport
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &report))
	assert.Equal(t, []string{"*.txt", "*.md"}, report.Include)
	assert.Empty(t, report.Files)
}

func TestHandleScanFile(t *testing.T) {
	svc, _ := setup(t)

	res := call(t, handleScanFile(svc), map[string]any{"file": "a.html"})
	require.False(t, res.IsError)

	var fs domain.FileScan
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &fs))
	require.Len(t, fs.Findings, 2)
	assert.Equal(t, 1, fs.Findings[0].Line)
	assert.Equal(t, "em-dash", fs.Findings[0].Pattern)
}

func TestHandleScanFile_Rejects(t *testing.T) {
	svc, _ := setup(t)

	for _, args := range []map[string]any{
		nil,
		{"file": "../etc/passwd"},
		{"file": "/etc/passwd"},
	} {
		res := call(t, handleScanFile(svc), args)
		assert.True(t, res.IsError, "args %v should be rejected", args)
	}
}

func TestHandleRepair(t *testing.T) {
	svc, dir := setup(t)

	res := call(t, handleRepair(svc), map[string]any{"dry_run": true})
	require.False(t, res.IsError)
	var report domain.RepairReport
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &report))
	assert.True(t, report.DryRun)
	assert.Equal(t, 2, report.TotalFixes)

	data, err := os.ReadFile(filepath.Join(dir, "a.html"))
	require.NoError(t, err)
	assert.Equal(t, brokenPage, string(data))

	res = call(t, handleRepair(svc), nil)
	require.False(t, res.IsError)
	data, err = os.ReadFile(filepath.Join(dir, "a.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Wait &#x2014; what?</p>\n<p>It's &#x2019;</p>\n", string(data))
}

func TestHandlePatterns(t *testing.T) {
	svc, _ := setup(t)

	res := call(t, handlePatterns(svc), nil)
	require.False(t, res.IsError)

	var entries []mojibake.Entry
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &entries))
	assert.Equal(t, "em-dash", entries[0].Name)
}

func TestResources(t *testing.T) {
	svc, _ := setup(t)

	contents, err := handlePatternsResource(svc)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	assert.Contains(t, contents[0].(mcplib.TextResourceContents).Text, "em-dash")

	_, err = handleRepair(svc)(context.Background(), mcplib.CallToolRequest{})
	require.NoError(t, err)

	contents, err = handleBackupsResource(svc)(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	assert.Contains(t, contents[0].(mcplib.TextResourceContents).Text, "a.html.backup_")
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pages"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pages", "index.html"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "..backup.html"), []byte("x"), 0644))

	path, err := resolve(root, "pages/index.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "pages", "index.html"), path)

	_, err = resolve(root, "../other/index.html")
	assert.Error(t, err)

	path, err = resolve(root, "..backup.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "..backup.html"), path)

	_, err = resolve(root, "missing.html")
	assert.Error(t, err)
}

func TestResolve_SymlinkOutsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "secret.html")
	require.NoError(t, os.WriteFile(outside, []byte("â€” secret"), 0644))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "link.html")))
	require.NoError(t, os.Symlink(filepath.Dir(outside), filepath.Join(root, "linkdir")))

	_, err := resolve(root, "link.html")
	assert.Error(t, err)
	_, err = resolve(root, "linkdir/secret.html")
	assert.Error(t, err)

	svc, err := newServices(root)
	require.NoError(t, err)
	res := call(t, handleScanFile(svc), map[string]any{"file": "link.html"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "outside the served directory")
}

func TestResolve_SymlinkInsideRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	target := filepath.Join(root, "real.html")
	require.NoError(t, os.WriteFile(target, []byte("ok"), 0644))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "alias.html")))

	path, err := resolve(root, "alias.html")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "alias.html"), path)
}
