// Package textcase converts identifiers between the naming styles used by
// code-generation templates.
//
// Words are split on '_', '-', whitespace and case transitions, so
// "fooBar_baz", "foo-bar baz" and "FooBarBaz" all split into foo, bar, baz.
// Acronyms stay together until the last capital before a lowercase letter:
// "HTTPServer" splits into http, server.
//
//	textcase.Underscore("FooBar")      // "foo_bar"
//	textcase.CamelCase("foo_bar")      // "FooBar"
//	textcase.LowerCamelCase("foo_bar") // "fooBar"
//	textcase.Literate("fooBar_baz")    // "Foo bar baz"
//	textcase.Normalize("fooBar_baz")   // "Foo Bar Baz"
//	textcase.StripExtension("a.go.tmpl") // "a.go"
package textcase
