package tui

import (
	"fmt"
	"strings"

	"github.com/verakore/mojifix/internal/domain/mojibake"
)

// RenderPatterns lists a table in match order. Broken sequences are quoted
// with escapes since most contain invisible or confusable characters.
func RenderPatterns(table *mojibake.Table) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Patterns") + "  " + dimStyle.Render(fmt.Sprintf("(%d, in match order)", table.Len())) + "\n")
	b.WriteString(separatorLine + "\n")

	for i, e := range table.Entries() {
		fmt.Fprintf(&b, "%s %s %s %s  %s\n",
			faintStyle.Render(fmt.Sprintf("%2d", i+1)),
			padRight(e.Name, 30),
			padRight(fmt.Sprintf("%+q", e.Broken), 34),
			headerStyle.Render(padRight(e.Canonical, 10)),
			dimStyle.Render(e.Label),
		)
	}
	return b.String()
}
