package latex

import "strings"

// Escape maps every LaTeX-reserved character in text to its safe escape
// sequence. The implementation is a single left-to-right scan that emits
// replacements directly, so replacement text (which itself contains
// backslashes and braces) is never rescanned and cannot be double-escaped.
// Empty input yields empty output.
func Escape(text string) (escaped string) {
	if text == "" {
		return escaped
	}

	var b strings.Builder
	b.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			b.WriteString(`\&`)
		case '%':
			b.WriteString(`\%`)
		case '$':
			b.WriteString(`\$`)
		case '#':
			b.WriteString(`\#`)
		case '^':
			b.WriteString(`\^{}`)
		case '_':
			b.WriteString(`\_`)
		case '{':
			b.WriteString(`\{`)
		case '}':
			b.WriteString(`\}`)
		case '~':
			b.WriteString(`\~{}`)
		case '\\':
			b.WriteString(`\textbackslash{}`)
		default:
			b.WriteRune(r)
		}
	}

	escaped = b.String()
	return escaped
}
