// Package textblock implements the line oriented transformations applied to
// rendered template fragments.
//
// Lines are separated by '\n'. A trailing newline produces a final empty line,
// which the functions treat like any other empty line.
package textblock

import (
	"strings"
)

const newline = "\n"

// Indent prefixes every non-empty line of text with indent.
// Empty lines are left untouched; whitespace-only lines count as content.
func Indent(text, indent string) string {
	lines := strings.Split(text, newline)
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, newline)
}

// Comment prefixes every line of text, blank ones included, with commenter and a space
func Comment(text, commenter string) string {
	prefix := commenter + " "

	lines := strings.Split(text, newline)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, newline)
}

// Curly wraps text in a single pair of curly braces
func Curly(text string) string {
	return "{" + text + "}"
}

// ClearEmptyLines removes every line that is empty or whitespace-only
func ClearEmptyLines(text string) string {
	lines := strings.Split(text, newline)

	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, newline)
}

// RemoveDoubleQuotes removes every '"' from text
func RemoveDoubleQuotes(text string) string {
	return strings.ReplaceAll(text, `"`, "")
}

// RemoveSingleQuotes removes every '\'' from text
func RemoveSingleQuotes(text string) string {
	return strings.ReplaceAll(text, `'`, "")
}

// EscapeDoubleQuotes prefixes every '"' in text with a backslash
func EscapeDoubleQuotes(text string) string {
	return strings.ReplaceAll(text, `"`, `\"`)
}

// EscapeSingleQuotes prefixes every '\'' in text with a backslash
func EscapeSingleQuotes(text string) string {
	return strings.ReplaceAll(text, `'`, `\'`)
}

// EscapeNewLine replaces every line feed with the two characters `\n`
func EscapeNewLine(text string) string {
	return strings.ReplaceAll(text, newline, `\n`)
}

// RemoveSurroundingQuotes strips one pair of matching outer quotes.
// Inner quotes and mismatched or one-sided quoting are left alone.
func RemoveSurroundingQuotes(text string) string {
	if len(text) < 2 {
		return text
	}

	first, last := text[0], text[len(text)-1]
	if first == last && (first == '"' || first == '\'') {
		return text[1 : len(text)-1]
	}
	return text
}

// StripRegexpDelimiters removes every leading '^' and every unescaped trailing
// '$' of a regular expression, so "^^a$$" becomes "a". A trailing '$' escaped
// with a backslash is a literal and is kept.
func StripRegexpDelimiters(text string) string {
	text = strings.TrimLeft(text, "^")

	for strings.HasSuffix(text, "$") && !escaped(text, len(text)-1) {
		text = text[:len(text)-1]
	}
	return text
}

// escaped reports whether the byte at pos is preceded by an odd number of backslashes
func escaped(text string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
