package seasonstats

import (
	"strings"
	"unicode/utf8"
)

const displayNameMaxRunes = 18

// ShortName abbreviates a multi-word name to "F. Last". Single-word names are
// returned unchanged.
func ShortName(fullName string) string {
	parts := strings.Fields(fullName)
	if len(parts) < 2 {
		return strings.TrimSpace(fullName)
	}
	first, _ := utf8.DecodeRuneInString(parts[0])
	return string(first) + ". " + parts[len(parts)-1]
}

// DisplayName keeps names up to 18 characters and abbreviates longer
// multi-word names.
func DisplayName(fullName string) string {
	name := strings.TrimSpace(fullName)
	if utf8.RuneCountInString(name) <= displayNameMaxRunes {
		return name
	}
	return ShortName(name)
}
