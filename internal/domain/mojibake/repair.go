package mojibake

import (
	"slices"
	"strings"
)

// Replacement records how often one entry was substituted.
type Replacement struct {
	Entry Entry
	Count int
}

// Result is the outcome of repairing a text.
type Result struct {
	Text         string
	Replacements []Replacement
	Total        int
}

// Changed reports whether any substitution was made.
func (r Result) Changed() bool { return r.Total > 0 }

// Repair substitutes every broken sequence in content with its canonical
// form. It replaces exactly the regions Scan reports, so a canonical form
// written for one entry is never matched by a later one.
func Repair(content string, table *Table) Result {
	res := Result{Text: content}

	matches := claim(content, table)
	if len(matches) == 0 {
		return res
	}

	// claim groups matches by entry in table order.
	for _, m := range matches {
		if n := len(res.Replacements); n > 0 && res.Replacements[n-1].Entry.Name == m.Entry.Name {
			res.Replacements[n-1].Count++
		} else {
			res.Replacements = append(res.Replacements, Replacement{Entry: m.Entry, Count: 1})
		}
	}
	res.Total = len(matches)

	slices.SortFunc(matches, func(a, b Match) int { return a.Offset - b.Offset })

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, m := range matches {
		b.WriteString(content[last:m.Offset])
		b.WriteString(m.Entry.Canonical)
		last = m.Offset + len(m.Entry.Broken)
	}
	b.WriteString(content[last:])
	res.Text = b.String()

	return res
}
