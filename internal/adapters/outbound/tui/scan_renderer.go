package tui

import (
	"fmt"
	"strings"

	"github.com/verakore/mojifix/internal/domain"
)

// RenderFileScan renders the findings for one file.
func RenderFileScan(fs domain.FileScan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s %s\n", dimStyle.Render("Checking"), fileStyle.Render(fs.File))

	if len(fs.Findings) == 0 {
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("●"), passStyle.Render("No encoding issues found"))
		return b.String()
	}

	if fs.Unreadable() {
		fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render("error"), fs.Findings[0].Message)
		return b.String()
	}

	fmt.Fprintf(&b, "  %s %s\n",
		failStyle.Render("●"),
		failStyle.Render(fmt.Sprintf("Found %s:", plural(len(fs.Findings), "encoding issue", "encoding issues"))),
	)
	for _, f := range fs.Findings {
		fmt.Fprintf(&b, "    %s %s %s\n",
			warnStyle.Render("•"),
			dimStyle.Render(fmt.Sprintf("Line %d:", f.Line)),
			f.Message,
		)
	}
	return b.String()
}

// RenderScanSummary renders the totals after every file has been scanned.
func RenderScanSummary(report *domain.ScanReport) string {
	var b strings.Builder

	b.WriteString("\n" + separatorLine + "\n")
	fmt.Fprintf(&b, "%s %s total encoding issues found in %s\n",
		titleStyle.Render("Summary:"),
		headerStyle.Render(fmt.Sprintf("%d", report.TotalFindings)),
		plural(len(report.Files), "file", "files"),
	)

	if report.HasFindings() {
		b.WriteString("\n" + hintStyle.Render("Run 'mojifix repair' to automatically fix these issues") + "\n")
	} else {
		b.WriteString("\n" + passStyle.Render("All files pass character encoding quality control!") + "\n")
	}
	return b.String()
}
