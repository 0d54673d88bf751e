// Package format holds the small string and number transforms shared by the
// view-model mapper and the presentation layer.
package format

import (
	"fmt"
	"strings"
	"unicode"
)

// Capitalize upper-cases the first rune of value and leaves the rest intact.
func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// FormatID renders a Pokédex number as a zero-padded display id, e.g. "#025".
func FormatID(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// FormatName converts an API token like "special-attack" into a display name
// like "Special attack". Only the first rune is capitalized.
func FormatName(value string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(value)
	return Capitalize(replaced)
}

// NormalizeQuery canonicalizes user input for use as an API name.
func NormalizeQuery(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
