package values

import (
	"strings"
	"unicode"
)

const (
	insertPrefix = "@"
	updatePrefix = "@update_"
)

// Placeholder derives the placeholder name for field in the given context:
// the transformed field name stem behind "@" (insert) or "@update_" (update).
func Placeholder(ctx Context, field string) string {
	if ctx == Update {
		return updatePrefix + stem(field)
	}
	return insertPrefix + stem(field)
}

// stem normalizes a field name into a placeholder identifier in one scan:
// runes outside letter/digit/underscore become "_", and an "_" is inserted
// before every uppercase letter that follows another character. A leading
// uppercase letter is kept as-is, so "userName" becomes "user_Name" while
// "Name" stays "Name".
func stem(field string) string {
	var sb strings.Builder
	sb.Grow(len(field) + 4)
	for _, r := range field {
		if !isWord(r) {
			sb.WriteByte('_')
			continue
		}
		if sb.Len() > 0 && unicode.IsUpper(r) {
			sb.WriteByte('_')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// isWord reports whether r is a letter, digit, or underscore.
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
