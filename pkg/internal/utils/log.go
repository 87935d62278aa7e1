package utils

import (
	"strings"
	"unicode"
)

const maxLogLength = 100

// SanitizeForLog makes an externally sourced string (an OS description, an
// override value) safe to log: line breaks and tabs are escaped, other
// control or non-printable runes become '?', and the result is truncated.
func SanitizeForLog(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\\':
			b.WriteString(`\\`)
		case unicode.IsControl(r), !unicode.IsPrint(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}

	if b.Len() > maxLogLength {
		return b.String()[:maxLogLength] + "...[truncated]"
	}
	return b.String()
}

// SanitizeHeaderValue prepares a value for a parenthesized User-Agent
// comment. Control runes are dropped, the comment delimiters ';', '(' and
// ')' are replaced with '_', and surrounding whitespace is trimmed. An
// empty result yields fallback.
func SanitizeHeaderValue(s, fallback string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == ';', r == '(', r == ')':
			b.WriteByte('_')
		case unicode.IsControl(r), !unicode.IsPrint(r):
		default:
			b.WriteRune(r)
		}
	}
	if v := strings.TrimSpace(b.String()); v != "" {
		return v
	}
	return fallback
}
