package mojibake

import "fmt"

type builtin struct {
	name  string
	title string
	char  rune
}

// builtins are matched in this order.
var builtins = []builtin{
	{"em-dash", "Em dash", '—'},
	{"en-dash", "En dash", '–'},

	{"right-arrow", "Right arrow", '→'},
	{"left-arrow", "Left arrow", '←'},
	{"up-arrow", "Up arrow", '↑'},
	{"down-arrow", "Down arrow", '↓'},

	{"right-single-quote", "Right single quote", '’'},
	{"left-single-quote", "Left single quote", '‘'},
	{"left-double-quote", "Left double quote", '“'},
	{"right-double-quote", "Right double quote", '”'},

	{"bullet", "Bullet", '•'},
	{"ellipsis", "Ellipsis", '…'},

	{"waving-hand", "Waving hand emoji", '\U0001F44B'},
	{"speech-bubble", "Speech bubble emoji", '\U0001F4AC'},
	{"check-mark", "Check mark emoji", '✅'},
	{"cross-mark", "Cross mark emoji", '❌'},
	{"rocket", "Rocket emoji", '\U0001F680'},
	{"light-bulb", "Light bulb emoji", '\U0001F4A1'},
}

// DefaultEntries returns the built-in entries, then their U+FFFD variants,
// then their truncated variants. Each group only sees text the earlier ones
// left, so the shortest forms go last.
func DefaultEntries() ([]Entry, error) {
	entries := make([]Entry, 0, len(builtins)*2)
	var replaced, truncated []Entry

	for _, b := range builtins {
		e, err := Derive(b.name, b.char, fmt.Sprintf("%s (%c)", b.title, b.char))
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
		if v, ok := Replaced(e); ok {
			replaced = append(replaced, v)
		}
		if v, ok := Truncated(e); ok {
			truncated = append(truncated, v)
		}
	}

	entries = append(entries, replaced...)
	return append(entries, truncated...), nil
}

// DefaultTable returns the built-in table.
func DefaultTable() (*Table, error) {
	entries, err := DefaultEntries()
	if err != nil {
		return nil, err
	}
	return NewTable(entries...)
}
