package codegen

import (
	"fmt"
	"strings"

	"github.com/aescanero/dago-codegen-helpers/internal/helper"
)

// Private variable names set while rendering list items
const (
	DataIndex = "index"
	DataFirst = "first"
	DataLast  = "last"
)

func (p *Provider) iterationHelpers() []helper.Descriptor {
	return []helper.Descriptor{
		{Name: "join", Value: helper.Between(1, 2), Block: helper.Between(1, 2), Handler: join},
		{Name: "with", Value: helper.NoArity, Block: helper.Exactly(2), Handler: with},
		{Name: "index", Value: helper.NoArity, Block: helper.Between(1, 2), Handler: index},
		{Name: "first", Value: helper.NoArity, Block: helper.Exactly(1), Handler: first},
		{Name: "last", Value: helper.NoArity, Block: helper.Exactly(1), Handler: last},
	}
}

// join concatenates the list items, or one block render per item, with the
// optional separator between them.
func join(inv *helper.Invocation) (string, error) {
	list, err := helper.ToList(inv.Name, inv.Arg(0))
	if err != nil {
		return "", err
	}
	sep := helper.ToText(inv.Arg(1))

	if inv.Mode() == helper.ValueMode {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = helper.ToText(item)
		}
		return strings.Join(parts, sep), nil
	}

	if len(list) == 0 {
		return inv.Inverse(inv.Scope)
	}

	var b strings.Builder
	for i, item := range list {
		if i > 0 {
			b.WriteString(sep)
		}

		scope := inv.Scope.Rebind(item).WithData(map[string]interface{}{
			DataIndex: i,
			DataFirst: i == 0,
			DataLast:  i == len(list)-1,
		})
		out, err := inv.Render(scope)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// with renders the block with one more named binding
func with(inv *helper.Invocation) (string, error) {
	name, ok := inv.Arg(1).(string)
	if !ok || name == "" {
		return "", &helper.ArgumentError{
			Helper:   inv.Name,
			Expected: "a binding name",
			Got:      fmt.Sprintf("%T %v", inv.Arg(1), inv.Arg(1)),
		}
	}
	return inv.Render(inv.Scope.Derive(name, inv.Arg(0)))
}

// index renders the block with one list item as the active value. Without an
// explicit position it uses the enclosing @index.
func index(inv *helper.Invocation) (string, error) {
	list, err := helper.ToList(inv.Name, inv.Arg(0))
	if err != nil {
		return "", err
	}

	var position interface{}
	if len(inv.Args) > 1 {
		position = inv.Args[1]
	} else {
		v, ok := inv.Scope.Data(DataIndex)
		if !ok {
			return "", &helper.ArgumentError{
				Helper:   inv.Name,
				Expected: "an index argument or an enclosing @index",
				Got:      "neither",
			}
		}
		position = v
	}

	i, err := helper.ToInt(inv.Name, position)
	if err != nil {
		return "", err
	}
	return renderItem(inv, list, i)
}

func first(inv *helper.Invocation) (string, error) {
	list, err := helper.ToList(inv.Name, inv.Arg(0))
	if err != nil {
		return "", err
	}
	return renderItem(inv, list, 0)
}

func last(inv *helper.Invocation) (string, error) {
	list, err := helper.ToList(inv.Name, inv.Arg(0))
	if err != nil {
		return "", err
	}
	return renderItem(inv, list, len(list)-1)
}

func renderItem(inv *helper.Invocation, list []interface{}, i int) (string, error) {
	if i < 0 || i >= len(list) {
		return "", &helper.IndexError{Helper: inv.Name, Index: i, Length: len(list)}
	}
	return inv.Render(inv.Scope.Rebind(list[i]))
}
