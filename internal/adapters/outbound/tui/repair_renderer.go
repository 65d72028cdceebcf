package tui

import (
	"fmt"
	"strings"

	"github.com/verakore/mojifix/internal/domain"
)

// RenderRepairHeader is printed before the first file is processed.
func RenderRepairHeader(dryRun bool) string {
	title := "Character Encoding Fix"
	if dryRun {
		title += " (dry run)"
	}
	return headerStyle.Render(title) + "\n" + separatorLine + "\n"
}

// RenderFixResult renders what happened to one file.
func RenderFixResult(res domain.FixResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s %s\n", dimStyle.Render("Processing"), fileStyle.Render(res.File))

	if res.Dirty {
		fmt.Fprintf(&b, "  %s %s\n", warnTagStyle.Render("warn "), dimStyle.Render("file has uncommitted changes"))
	}

	for _, r := range res.Replacements {
		fmt.Fprintf(&b, "    %s Fixed %d instances of %+q %s\n",
			warnStyle.Render("•"), r.Count, r.Broken, faintStyle.Render("("+r.Pattern+")"))
	}

	switch res.Status {
	case domain.FixStatusFixed:
		fmt.Fprintf(&b, "    %s Created backup: %s\n", warnStyle.Render("•"), res.BackupPath)
		fmt.Fprintf(&b, "  %s %s\n", passStyle.Render("●"),
			passStyle.Render(fmt.Sprintf("Applied %s to %s", plural(res.FixesApplied, "fix", "fixes"), res.File)))
	case domain.FixStatusWouldFix:
		fmt.Fprintf(&b, "  %s %s\n", warnStyle.Render("●"),
			warnStyle.Render(fmt.Sprintf("Would apply %s to %s", plural(res.FixesApplied, "fix", "fixes"), res.File)))
	case domain.FixStatusClean:
		fmt.Fprintf(&b, "  %s %s\n", infoTagStyle.Render("●"),
			dimStyle.Render(fmt.Sprintf("No fixes needed for %s", res.File)))
	case domain.FixStatusSkipped:
		fmt.Fprintf(&b, "  %s Skipped %s: %s\n", warnTagStyle.Render("warn "), res.File, res.Error)
	case domain.FixStatusFailed:
		if res.BackupPath != "" {
			fmt.Fprintf(&b, "    %s Backup kept: %s\n", warnStyle.Render("•"), res.BackupPath)
		}
		fmt.Fprintf(&b, "  %s Cannot fix %s: %s\n", errorTagStyle.Render("error"), res.File, res.Error)
	}

	return b.String()
}

// RenderRepairSummary renders the totals after every file has been processed.
func RenderRepairSummary(report *domain.RepairReport) string {
	var b strings.Builder

	b.WriteString("\n" + separatorLine + "\n")
	b.WriteString(titleStyle.Render("Summary:") + "\n")
	fmt.Fprintf(&b, "  • Files processed: %d\n", report.FilesProcessed)
	if report.DryRun {
		fmt.Fprintf(&b, "  • Files to fix: %d\n", report.FilesFixed)
	} else {
		fmt.Fprintf(&b, "  • Files fixed: %d\n", report.FilesFixed)
	}
	fmt.Fprintf(&b, "  • Total fixes: %d\n", report.TotalFixes)
	if report.FilesFailed > 0 {
		fmt.Fprintf(&b, "  • %s\n", failStyle.Render(fmt.Sprintf("Files failed: %d", report.FilesFailed)))
	}

	switch {
	case report.FilesFailed > 0:
		b.WriteString("\n" + failStyle.Render("Some files could not be repaired; see errors above.") + "\n")
	case report.DryRun && report.Changed():
		b.WriteString("\n" + hintStyle.Render("Run 'mojifix repair' without --dry-run to apply these fixes") + "\n")
	case report.Changed():
		b.WriteString("\n" + passStyle.Render("Character encoding fixes applied!") + "\n")
		b.WriteString(hintStyle.Render("Run 'mojifix scan' to verify fixes") + "\n")
	default:
		b.WriteString("\n" + passStyle.Render("No character encoding issues found!") + "\n")
	}
	return b.String()
}
