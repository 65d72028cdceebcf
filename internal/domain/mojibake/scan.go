package mojibake

import (
	"bytes"
	"sort"
)

// Match is one occurrence of an entry in a text.
type Match struct {
	Entry  Entry
	Offset int // byte offset of the first broken byte
	Line   int // 1-indexed
}

// Scan finds every occurrence of every entry in content. Matches come back
// in table order, then by position. A region claimed by an earlier entry is
// not matched again, which mirrors what Repair does to the same text.
func Scan(content string, table *Table) []Match {
	matches := claim(content, table)
	if len(matches) == 0 {
		return nil
	}

	lines := newLineIndex(content)
	for i := range matches {
		matches[i].Line = lines.lineAt(matches[i].Offset)
	}
	return matches
}

// claim walks the table in order and records every occurrence of each entry
// outside the regions earlier entries already took. Line is left unset.
func claim(content string, table *Table) []Match {
	if table == nil || content == "" {
		return nil
	}

	work := []byte(content)
	var matches []Match

	for _, e := range table.entries {
		pattern := []byte(e.Broken)
		for from := 0; from < len(work); {
			i := bytes.Index(work[from:], pattern)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(pattern)
			matches = append(matches, Match{Entry: e, Offset: start})

			// Entries never contain NUL, so a zeroed region can't match again.
			clear(work[start:end])
			from = end
		}
	}

	return matches
}

// lineIndex answers "which line is this offset on" with a binary search over
// newline positions.
type lineIndex []int

func newLineIndex(content string) lineIndex {
	var idx lineIndex
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			idx = append(idx, i)
		}
	}
	return idx
}

// lineAt returns 1 plus the number of newlines before offset.
func (l lineIndex) lineAt(offset int) int {
	return sort.SearchInts(l, offset) + 1
}

// LineAt returns the 1-indexed line containing the byte at offset.
func LineAt(content string, offset int) int {
	return newLineIndex(content).lineAt(offset)
}
