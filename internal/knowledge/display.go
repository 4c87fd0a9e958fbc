package knowledge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// OptionLabel turns an answer token into display text: underscores become
// spaces and the first letter is capitalised.
func OptionLabel(token string) string {
	text := strings.ReplaceAll(token, "_", " ")
	first, size := utf8.DecodeRuneInString(text)
	if first == utf8.RuneError {
		return text
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(text[size:])
}

// TestDisplayName renders a test id for tests without a catalogue name.
func TestDisplayName(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "_", " "))
}
