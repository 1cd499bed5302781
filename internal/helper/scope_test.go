package helper

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type model struct {
	Name   string
	Fields []string
	hidden string
}

func TestScopeDeriveLeavesParent(t *testing.T) {
	root := NewScope(map[string]interface{}{"name": "user", "kind": "table"})

	s := root.Derive("name", "account")
	assert.Equal(t, boundContext{"name": "account", "kind": "table"}, s.Context())
	assert.Equal(t, map[string]interface{}{"name": "user", "kind": "table"}, root.Context())

	t.Run("rebind drops bindings", func(t *testing.T) {
		r := s.Rebind(map[string]interface{}{"name": "id"})
		assert.Equal(t, map[string]interface{}{"name": "id"}, r.Context())
		assert.Equal(t, "account", s.Bindings()["name"])
	})

	t.Run("struct fields", func(t *testing.T) {
		ctx := NewScope(model{Name: "user", hidden: "x"}).Derive("model", "m").Context()
		assert.Equal(t, boundContext{"Name": "user", "name": "user", "Fields": []string(nil), "fields": []string(nil), "model": "m"}, ctx)
	})
}

func TestScopeSiblingsShareParent(t *testing.T) {
	parent := NewScope("root").Derive("outer", 1)

	a := parent.Rebind("a").WithData(map[string]interface{}{"index": 0})
	b := parent.Rebind("b").WithData(map[string]interface{}{"index": 1})

	assert.Equal(t, "a", a.This())
	assert.Equal(t, "b", b.This())
	assert.Equal(t, "root", parent.This())

	ia, _ := a.Data("index")
	ib, _ := b.Data("index")
	assert.Equal(t, 0, ia)
	assert.Equal(t, 1, ib)

	_, ok := parent.Data("index")
	assert.False(t, ok)
}

func TestScopeWithDataCopies(t *testing.T) {
	data := map[string]interface{}{"index": 0}
	s := NewScope(nil).WithData(data)
	data["index"] = 5

	v, _ := s.Data("index")
	assert.Equal(t, 0, v)
}

func TestScopeDataMap(t *testing.T) {
	s := NewScope(nil).
		WithData(map[string]interface{}{"index": 0, "key": "a"}).
		Rebind("x").
		WithData(map[string]interface{}{"index": 3})

	assert.Equal(t, map[string]interface{}{"index": 3, "key": "a"}, s.DataMap())
}

func TestScopeBindingsAndContext(t *testing.T) {
	root := NewScope(map[string]interface{}{"name": "user"})
	assert.Empty(t, root.Bindings())
	assert.Equal(t, map[string]interface{}{"name": "user"}, root.Context())

	s := root.Derive("alias", "u").Derive("alias", "v").Derive("other", 1)
	assert.Equal(t, map[string]interface{}{"alias": "v", "other": 1}, s.Bindings())
	assert.Equal(t, boundContext{"name": "user", "alias": "v", "other": 1}, s.Context())

	rebound := s.Rebind("item")
	assert.Empty(t, rebound.Bindings())
	assert.Equal(t, "item", rebound.Context())

	withStruct := NewScope(model{Name: "user"}).Derive("model", "m")
	ctx, ok := withStruct.Context().(boundContext)
	require.True(t, ok)
	assert.Equal(t, "user", ctx["Name"])
	assert.Equal(t, "user", ctx["name"])
	assert.Equal(t, "m", ctx["model"])
}

func TestScopeContextPrintsScalar(t *testing.T) {
	ctx := NewScope("a").Derive("letter", "a").Context()
	assert.Equal(t, boundContext{"letter": "a", "this": "a"}, ctx)
	assert.Equal(t, "a", fmt.Sprint(ctx))
	assert.Equal(t, "a", ToText(ctx))

	ctx = NewScope(3).Derive("n", 3).Context()
	assert.Equal(t, "3", ToText(ctx))

	ctx = NewScope(map[string]interface{}{"k": 1}).Derive("n", 2).Context()
	assert.Equal(t, "map[k:1 n:2]", fmt.Sprint(ctx))

	ctx = NewScope(nil).Derive("n", 2).Context()
	assert.Equal(t, boundContext{"n": 2}, ctx)
}
