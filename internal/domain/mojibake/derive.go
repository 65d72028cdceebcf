package mojibake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// legacy is the single-byte encoding UTF-8 is most often misread as.
var legacy = charmap.Windows1252

// Misdecode returns the text produced when the UTF-8 encoding of r is
// decoded as Windows-1252. Bytes the code page leaves unassigned (0x81,
// 0x8D, 0x8F, 0x90, 0x9D) come through as the C1 control of the same value,
// the way Latin-1 based decoders pass them on.
func Misdecode(r rune) (string, error) {
	if !utf8.ValidRune(r) {
		return "", fmt.Errorf("invalid rune %U", r)
	}
	if r < utf8.RuneSelf {
		return "", fmt.Errorf("%U is ASCII and cannot be misdecoded", r)
	}

	var b strings.Builder
	for _, c := range utf8.AppendRune(nil, r) {
		d := legacy.DecodeByte(c)
		if d == utf8.RuneError {
			d = rune(c)
		}
		b.WriteRune(d)
	}
	return b.String(), nil
}

// CanonicalForm returns the hexadecimal numeric character reference for r.
func CanonicalForm(r rune) string {
	return fmt.Sprintf("&#x%04X;", r)
}

// Derive builds the entry for r. An empty label defaults to the character
// itself.
func Derive(name string, r rune, label string) (Entry, error) {
	broken, err := Misdecode(r)
	if err != nil {
		return Entry{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	if label == "" {
		label = string(r)
	}
	return Entry{
		Name:      name,
		Broken:    broken,
		Canonical: CanonicalForm(r),
		Label:     label,
	}, nil
}

// Truncated returns the variant of e with the characters Windows-1252
// leaves undefined (0x81, 0x8D, 0x8F, 0x90, 0x9D) removed. Editors tend to
// drop those, leaving a shorter sequence behind. ok is false when e has no
// such characters.
func Truncated(e Entry) (Entry, bool) {
	stripped := strings.Map(func(r rune) rune {
		if isUndefined(r) {
			return -1
		}
		return r
	}, e.Broken)

	if stripped == e.Broken || stripped == "" {
		return Entry{}, false
	}
	return Entry{
		Name:      e.Name + "-truncated",
		Broken:    stripped,
		Canonical: e.Canonical,
		Label:     e.Label + ", truncated",
	}, true
}

// Replaced returns the variant of e with each C1 control swapped for
// U+FFFD, as left by decoders that reject unassigned bytes. ok is false
// when e has no such characters.
func Replaced(e Entry) (Entry, bool) {
	swapped := strings.Map(func(r rune) rune {
		if isUndefined(r) {
			return utf8.RuneError
		}
		return r
	}, e.Broken)

	if swapped == e.Broken {
		return Entry{}, false
	}
	return Entry{
		Name:      e.Name + "-replaced",
		Broken:    swapped,
		Canonical: e.Canonical,
		Label:     e.Label + ", with replacement character",
	}, true
}

// isUndefined reports whether r is the C1 control Misdecode emits for an
// unassigned Windows-1252 byte.
func isUndefined(r rune) bool {
	return r >= 0x80 && r <= 0x9F
}
