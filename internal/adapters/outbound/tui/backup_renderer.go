package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/verakore/mojifix/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// RenderBackups lists backups oldest first.
func RenderBackups(backups []domain.Backup) string {
	if len(backups) == 0 {
		return "  " + dimStyle.Render("No backups found.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Backups") + "  " + dimStyle.Render(fmt.Sprintf("(%d)", len(backups))) + "\n")
	b.WriteString(separatorLine + "\n")
	for _, bk := range backups {
		fmt.Fprintf(&b, "  %s  %s\n", dimStyle.Render(bk.CreatedAt.Format(timeLayout)), bk.Path)
	}
	return b.String()
}

// RenderPrune summarises a prune run.
func RenderPrune(report *domain.PruneReport) string {
	var b strings.Builder

	verb := "Removed"
	if report.DryRun {
		verb = "Would remove"
	}

	if report.Cutoff.IsZero() {
		b.WriteString(dimStyle.Render("Retention is disabled; keeping all backups.") + "\n")
	} else {
		fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("Cutoff:"), report.Cutoff.Format(time.RFC3339))
	}

	for _, bk := range report.Removed {
		fmt.Fprintf(&b, "  %s %s %s\n", warnStyle.Render("•"), verb, bk.Path)
	}
	for _, e := range report.Errors {
		fmt.Fprintf(&b, "  %s %s\n", errorTagStyle.Render("error"), e)
	}

	fmt.Fprintf(&b, "%s %s, kept %d\n",
		titleStyle.Render(verb+":"),
		plural(len(report.Removed), "backup", "backups"),
		len(report.Kept),
	)
	return b.String()
}
