package codegen

import (
	"github.com/aescanero/dago-codegen-helpers/internal/helper"
	"github.com/aescanero/dago-codegen-helpers/internal/textblock"
)

// plain adapts a text function that takes no options
func plain(fn func(string) string) helper.TransformFunc {
	return func(c helper.Content, _ []interface{}) (string, error) {
		return fn(c.Text), nil
	}
}

func (p *Provider) textHelpers() []helper.Descriptor {
	none := helper.Exactly(0)

	return []helper.Descriptor{
		helper.Func("to_string", func(s string) string { return s }),
		helper.Transform("indent", helper.Between(0, 1), p.indent),
		helper.Transform("comment", helper.Exactly(1), comment),
		helper.Transform("clear_empty_lines", none, plain(textblock.ClearEmptyLines)),
		helper.Transform("remove_double_quotes", none, plain(textblock.RemoveDoubleQuotes)),
		helper.Transform("remove_single_quotes", none, plain(textblock.RemoveSingleQuotes)),
		helper.Transform("escape_double_quotes", none, plain(textblock.EscapeDoubleQuotes)),
		helper.Transform("escape_single_quotes", none, plain(textblock.EscapeSingleQuotes)),
		helper.Transform("curly", none, plain(textblock.Curly)),
		helper.Transform("strip_regexp_delimiters", none, plain(textblock.StripRegexpDelimiters)),
		helper.Transform("escape_new_line", none, plain(textblock.EscapeNewLine)),
		helper.Transform("remove_surrounding_quotes", none, plain(textblock.RemoveSurroundingQuotes)),
		helper.Const("open_curly", "{"),
		helper.Const("close_curly", "}"),
		helper.Const("tab", "\t"),
	}
}

// indent uses the explicit indent argument when given, else the configured one
func (p *Provider) indent(c helper.Content, opts []interface{}) (string, error) {
	indentation := p.Indentation()
	if len(opts) > 0 && opts[0] != nil {
		indentation = helper.ToText(opts[0])
	}
	return textblock.Indent(c.Text, indentation), nil
}

func comment(c helper.Content, opts []interface{}) (string, error) {
	return textblock.Comment(c.Text, helper.ToText(opts[0])), nil
}
