package mojibake_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verakore/mojifix/internal/domain/mojibake"
)

func defaultTable(t *testing.T) *mojibake.Table {
	t.Helper()
	table, err := mojibake.DefaultTable()
	require.NoError(t, err)
	return table
}

func TestDefaultTable_Builds(t *testing.T) {
	table := defaultTable(t)
	// 18 built-ins plus U+FFFD and truncated variants for ”, ← and ❌.
	assert.Equal(t, 24, table.Len())
}

func TestDefaultTable_BrokenSequences(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		name      string
		broken    string
		canonical string
	}{
		{"em-dash", "â€”", "&#x2014;"},
		{"en-dash", "â€“", "&#x2013;"},
		{"right-single-quote", "â€™", "&#x2019;"},
		{"left-single-quote", "â€˜", "&#x2018;"},
		{"left-double-quote", "â€œ", "&#x201C;"},
		{"right-double-quote", "â€\u009d", "&#x201D;"},
		{"bullet", "â€¢", "&#x2022;"},
		{"ellipsis", "â€¦", "&#x2026;"},
		{"right-arrow", "â†’", "&#x2192;"},
		{"left-arrow", "â†\u0090", "&#x2190;"},
		{"waving-hand", "ðŸ‘‹", "&#x1F44B;"},
		{"check-mark", "âœ…", "&#x2705;"},
		{"rocket", "ðŸš€", "&#x1F680;"},
		{"cross-mark", "â\u009dŒ", "&#x274C;"},
		{"right-double-quote-replaced", "â€\ufffd", "&#x201D;"},
		{"left-arrow-replaced", "â†\ufffd", "&#x2190;"},
		{"cross-mark-replaced", "â\ufffdŒ", "&#x274C;"},
		{"right-double-quote-truncated", "â€", "&#x201D;"},
		{"left-arrow-truncated", "â†", "&#x2190;"},
		{"cross-mark-truncated", "âŒ", "&#x274C;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := table.Lookup(tt.name)
			require.True(t, ok, "pattern %q should exist", tt.name)
			assert.Equal(t, tt.broken, e.Broken)
			assert.Equal(t, tt.canonical, e.Canonical)
		})
	}
}

func TestDefaultTable_TruncatedVariantsComeLast(t *testing.T) {
	entries := defaultTable(t).Entries()

	seenTruncated := false
	for _, e := range entries {
		isVariant := strings.HasSuffix(e.Name, "-truncated")
		if seenTruncated {
			assert.True(t, isVariant, "%s follows a truncated variant", e.Name)
		}
		seenTruncated = seenTruncated || isVariant
	}
	assert.True(t, seenTruncated)
}

func TestDefaultTable_ReplacedVariantsPrecedeTruncated(t *testing.T) {
	entries := defaultTable(t).Entries()

	index := func(name string) int {
		for i, e := range entries {
			if e.Name == name {
				return i
			}
		}
		t.Fatalf("pattern %q missing", name)
		return -1
	}

	for _, name := range []string{"right-double-quote", "left-arrow", "cross-mark"} {
		assert.Less(t, index(name), index(name+"-replaced"))
		assert.Less(t, index(name+"-replaced"), index(name+"-truncated"))
	}
}

func TestMisdecode_UnassignedBytesBecomeControls(t *testing.T) {
	tests := []struct {
		char rune
		want string
	}{
		{'”', "â€\u009d"}, // E2 80 9D
		{'←', "â†\u0090"}, // E2 86 90
		{'❌', "â\u009dŒ"}, // E2 9D 8C
		{'\u00C1', "Ã\u0081"}, // C3 81
		{'\u00CD', "Ã\u008d"}, // C3 8D
		{'\u00CF', "Ã\u008f"}, // C3 8F
	}
	for _, tt := range tests {
		got, err := mojibake.Misdecode(tt.char)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%U", tt.char)
		assert.NotContains(t, got, "\ufffd")
	}
}

func TestReplaced_NoUndefinedBytes(t *testing.T) {
	e, err := mojibake.Derive("bullet", '•', "")
	require.NoError(t, err)
	_, ok := mojibake.Replaced(e)
	assert.False(t, ok)
}

func TestDescription(t *testing.T) {
	e, ok := defaultTable(t).Lookup("right-single-quote")
	require.True(t, ok)
	assert.Equal(t, "Right single quote (’) should be &#x2019;", e.Description())
}

func TestDerive_RejectsASCII(t *testing.T) {
	_, err := mojibake.Derive("plain", 'a', "")
	assert.Error(t, err)
}

func TestDerive_DefaultLabel(t *testing.T) {
	e, err := mojibake.Derive("trade-mark", '™', "")
	require.NoError(t, err)
	assert.Equal(t, "™", e.Label)
	assert.Equal(t, "â„¢", e.Broken)
	assert.Equal(t, "&#x2122;", e.Canonical)
}

func TestTruncated_NoUndefinedBytes(t *testing.T) {
	e, err := mojibake.Derive("bullet", '•', "")
	require.NoError(t, err)
	_, ok := mojibake.Truncated(e)
	assert.False(t, ok)
}

func TestNewTable_DuplicateBroken(t *testing.T) {
	_, err := mojibake.NewTable(
		mojibake.Entry{Name: "a", Broken: "â€”", Canonical: "&#x2014;", Label: "em"},
		mojibake.Entry{Name: "b", Broken: "â€”", Canonical: "&#x2013;", Label: "en"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already mapped")
}

func TestNewTable_DuplicateName(t *testing.T) {
	_, err := mojibake.NewTable(
		mojibake.Entry{Name: "a", Broken: "x1", Canonical: "y", Label: "l"},
		mojibake.Entry{Name: "a", Broken: "x2", Canonical: "y", Label: "l"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used")
}

func TestNewTable_SharedCanonicalAllowed(t *testing.T) {
	table, err := mojibake.NewTable(
		mojibake.Entry{Name: "arrow-a", Broken: "â†’", Canonical: "&#x2192;", Label: "arrow"},
		mojibake.Entry{Name: "arrow-b", Broken: "->>", Canonical: "&#x2192;", Label: "arrow"},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestNewTable_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry mojibake.Entry
	}{
		{"empty name", mojibake.Entry{Broken: "x", Canonical: "y"}},
		{"empty broken", mojibake.Entry{Name: "n", Canonical: "y"}},
		{"empty canonical", mojibake.Entry{Name: "n", Broken: "x"}},
		{"nul in broken", mojibake.Entry{Name: "n", Broken: "a\x00b", Canonical: "y"}},
		{"self-referencing", mojibake.Entry{Name: "n", Broken: "ab", Canonical: "xaby"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mojibake.NewTable(tt.entry)
			assert.Error(t, err)
		})
	}
}

func TestTable_Without(t *testing.T) {
	table := defaultTable(t)

	smaller, err := table.Without("rocket", "bullet")
	require.NoError(t, err)
	assert.Equal(t, table.Len()-2, smaller.Len())
	_, ok := smaller.Lookup("rocket")
	assert.False(t, ok)

	// The original is untouched.
	_, ok = table.Lookup("rocket")
	assert.True(t, ok)
}

func TestTable_WithoutUnknown(t *testing.T) {
	_, err := defaultTable(t).Without("no-such-pattern")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-pattern")
}

func TestTable_PrependTakesPrecedence(t *testing.T) {
	custom := mojibake.Entry{Name: "apostrophe", Broken: "â€™", Canonical: "'", Label: "Apostrophe"}

	_, err := defaultTable(t).Prepend(custom)
	require.Error(t, err, "same broken sequence as a built-in must be rejected")

	table, err := defaultTable(t).Without("right-single-quote")
	require.NoError(t, err)
	table, err = table.Prepend(custom)
	require.NoError(t, err)
	assert.Equal(t, "apostrophe", table.Entries()[0].Name)

	res := mojibake.Repair("Itâ€™s", table)
	assert.Equal(t, "It's", res.Text)
}
