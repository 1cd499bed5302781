package textcase

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/stoewer/go-strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// strcase only sees ASCII letter transitions
var caseBoundary = regexp.MustCompile(`([\p{Ll}\d])(\p{Lu})`)

// Words splits s into lowercase words. A new word starts after a separator
// and at every case transition, including the end of an acronym.
func Words(s string) []string {
	s = caseBoundary.ReplaceAllString(s, "${1}_${2}")
	parts := strings.Split(strcase.SnakeCase(s), "_")

	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			words = append(words, strings.ToLower(part))
		}
	}
	return words
}

// Underscore converts s to snake_case
func Underscore(s string) string {
	return strings.Join(Words(s), "_")
}

// CamelCase converts s to UpperCamelCase
func CamelCase(s string) string {
	return joinTitled(Words(s), 0)
}

// LowerCamelCase converts s to lowerCamelCase
func LowerCamelCase(s string) string {
	return joinTitled(Words(s), 1)
}

// joinTitled concatenates words, title casing every word from index from on
func joinTitled(words []string, from int) string {
	caser := cases.Title(language.English)

	var b strings.Builder
	for i, w := range words {
		if i >= from {
			w = caser.String(w)
		}
		b.WriteString(w)
	}
	return b.String()
}

// Literate converts s to a sentence: first word capitalized, the rest lowercase
func Literate(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	// Caser values are stateful, never share one
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

// Normalize converts s to space separated title case words
func Normalize(s string) string {
	return cases.Title(language.English).String(NormalizeLower(s))
}

// NormalizeLower converts s to space separated lowercase words
func NormalizeLower(s string) string {
	return strings.Join(Words(s), " ")
}

// StripExtension removes the last file name extension from s.
// Dot files such as ".gitignore" are returned unchanged.
func StripExtension(s string) string {
	ext := filepath.Ext(s)
	if ext == "" || ext == filepath.Base(s) {
		return s
	}
	return strings.TrimSuffix(s, ext)
}
