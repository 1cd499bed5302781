package textblock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndent(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		indent string
		want   string
	}{
		{"two lines", "A\nB", "  ", "  A\n  B"},
		{"empty lines untouched", "A\n\nB\n", "\t", "\tA\n\n\tB\n"},
		{"whitespace only line is content", "A\n  \nB", "--", "--A\n--  \n--B"},
		{"empty text", "", "  ", ""},
		{"empty indent", "A\nB", "", "A\nB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Indent(tt.text, tt.indent))
		})
	}
}

func TestComment(t *testing.T) {
	assert.Equal(t, "/+ A\n/+ B", Comment("A\nB", "/+"))
	assert.Equal(t, "// A\n// \n// B", Comment("A\n\nB", "//"))
	assert.Equal(t, "# ", Comment("", "#"))
}

func TestCurly(t *testing.T) {
	assert.Equal(t, "{A\nB\nC}", Curly("A\nB\nC"))
	assert.Equal(t, "{}", Curly(""))
}

func TestClearEmptyLines(t *testing.T) {
	assert.Equal(t, "A\nB\n  C", ClearEmptyLines("A\n\n \t\nB\n  C\n"))
	assert.Equal(t, "", ClearEmptyLines("\n\n"))
}

func TestQuotes(t *testing.T) {
	text := `say "hi" it's`

	assert.Equal(t, `say hi it's`, RemoveDoubleQuotes(text))
	assert.Equal(t, `say "hi" its`, RemoveSingleQuotes(text))
	assert.Equal(t, `say \"hi\" it's`, EscapeDoubleQuotes(text))
	assert.Equal(t, `say "hi" it\'s`, EscapeSingleQuotes(text))
}

func TestEscapeNewLine(t *testing.T) {
	assert.Equal(t, `a\nb`, EscapeNewLine("a\nb"))
	assert.Equal(t, "a\tb\r", EscapeNewLine("a\tb\r"))
}

func TestRemoveSurroundingQuotes(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`"x"`, `x`},
		{`'x'`, `x`},
		{`"""x"""`, `""x""`},
		{`"x'`, `"x'`},
		{`"x`, `"x`},
		{`x"`, `x"`},
		{`"a"b"`, `a"b`},
		{`""`, ``},
		{`"`, `"`},
		{``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveSurroundingQuotes(tt.text))
		})
	}
}

func TestStripRegexpDelimiters(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{`^[a-z]+$`, `[a-z]+`},
		{`^abc`, `abc`},
		{`abc$`, `abc`},
		{`a^b$c`, `a^b$c`},
		{`price\$`, `price\$`},
		{`price\\$`, `price\\`},
		{`^^a$$`, `a`},
		{``, ``},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, StripRegexpDelimiters(tt.text))
		})
	}
}
