package helper

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBlock renders the active value of the scope it is given
type stubBlock struct {
	inverse string
	scopes  []*Scope
}

func (b *stubBlock) Render(scope *Scope) (string, error) {
	b.scopes = append(b.scopes, scope)
	return ToText(scope.This()), nil
}

func (b *stubBlock) Inverse(*Scope) (string, error) {
	return b.inverse, nil
}

func upper(c Content, _ []interface{}) (string, error) {
	return strings.ToUpper(c.Text), nil
}

func TestArity(t *testing.T) {
	assert.True(t, Exactly(1).Accepts(1))
	assert.False(t, Exactly(1).Accepts(0))
	assert.True(t, Between(1, 2).Accepts(2))
	assert.False(t, Between(1, 2).Accepts(3))
	assert.False(t, NoArity.Accepts(0))

	assert.Equal(t, "1", Exactly(1).String())
	assert.Equal(t, "0 to 2", Between(0, 2).String())
	assert.Equal(t, "no", NoArity.String())
}

func TestDescriptorValidate(t *testing.T) {
	handler := func(*Invocation) (string, error) { return "", nil }

	tests := []struct {
		name    string
		d       Descriptor
		wantErr string
	}{
		{
			name: "valid",
			d:    Descriptor{Name: "ok", Value: Exactly(1), Block: NoArity, Handler: handler},
		},
		{
			name:    "missing name",
			d:       Descriptor{Value: Exactly(1), Block: NoArity, Handler: handler},
			wantErr: "name is required",
		},
		{
			name:    "name is not an identifier",
			d:       Descriptor{Name: "two words", Value: Exactly(1), Block: NoArity, Handler: handler},
			wantErr: "template identifier",
		},
		{
			name:    "missing handler",
			d:       Descriptor{Name: "nothing", Value: Exactly(1), Block: NoArity},
			wantErr: "handler is required",
		},
		{
			name:    "no mode supported",
			d:       Descriptor{Name: "useless", Value: NoArity, Block: NoArity, Handler: handler},
			wantErr: "accepts neither arguments nor a block",
		},
		{
			name:    "inverted range",
			d:       Descriptor{Name: "inverted", Value: Between(2, 1), Block: NoArity, Handler: handler},
			wantErr: "value mode arity 2 exceeds 1",
		},
		{
			name:    "half negative range",
			d:       Descriptor{Name: "broken", Value: Exactly(1), Block: Arity{Min: -1, Max: 3}, Handler: handler},
			wantErr: "invalid block mode arity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var regErr *RegistrationError
			require.True(t, errors.As(err, &regErr))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDescriptorInvokeChecksArity(t *testing.T) {
	d := Transform("shout", Exactly(0), upper)

	_, err := d.Invoke(&Invocation{Args: []interface{}{"a", "b"}})
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "shout", argErr.Helper)

	d = Const("tab", "\t")
	_, err = d.Invoke(&Invocation{Block: &stubBlock{}})
	require.True(t, errors.As(err, &argErr))
	assert.Contains(t, err.Error(), "no block mode call")
}

func TestTransform(t *testing.T) {
	d := Transform("shout", Exactly(0), upper)

	assert.Equal(t, Exactly(1), d.Value)
	assert.Equal(t, Exactly(0), d.Block)

	t.Run("value mode uses the last argument", func(t *testing.T) {
		out, err := d.Invoke(&Invocation{Args: []interface{}{"hello"}})
		require.NoError(t, err)
		assert.Equal(t, "HELLO", out)
	})

	t.Run("nil value renders nothing", func(t *testing.T) {
		called := false
		d := Transform("probe", Exactly(0), func(Content, []interface{}) (string, error) {
			called = true
			return "x", nil
		})

		out, err := d.Invoke(&Invocation{Args: []interface{}{nil}})
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.False(t, called)
	})

	t.Run("block mode renders the invocation scope", func(t *testing.T) {
		block := &stubBlock{}
		scope := NewScope("quiet")

		out, err := d.Invoke(&Invocation{Scope: scope, Block: block})
		require.NoError(t, err)
		assert.Equal(t, "QUIET", out)
		require.Len(t, block.scopes, 1)
		assert.Same(t, scope, block.scopes[0])
	})

	t.Run("options come before the value", func(t *testing.T) {
		d := Transform("wrap", Exactly(1), func(c Content, opts []interface{}) (string, error) {
			return ToText(opts[0]) + c.Text + ToText(opts[0]), nil
		})

		out, err := d.Invoke(&Invocation{Args: []interface{}{"*", "bold"}})
		require.NoError(t, err)
		assert.Equal(t, "*bold*", out)

		out, err = d.Invoke(&Invocation{Args: []interface{}{"_"}, Scope: NewScope("it"), Block: &stubBlock{}})
		require.NoError(t, err)
		assert.Equal(t, "_it_", out)
	})
}

func TestFunc(t *testing.T) {
	d := Func("upper", strings.ToUpper)

	out, err := d.Invoke(&Invocation{Args: []interface{}{"abc"}})
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)

	out, err = d.Invoke(&Invocation{Args: []interface{}{nil}})
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.True(t, d.Value.Supported())
	assert.False(t, d.Block.Supported())
}

func TestInvocationRenderWithoutBlock(t *testing.T) {
	inv := &Invocation{Name: "indent"}

	_, err := inv.Render(NewScope(nil))
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))

	out, err := inv.Inverse(NewScope(nil))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestToText(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{"nil", nil, ""},
		{"string", "a", "a"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"float", 3.14, "3.14"},
		{"integral float", 2.0, "2"},
		{"int", 42, "42"},
		{"int64", int64(-7), "-7"},
		{"uint", uint8(9), "9"},
		{"nil pointer", (*int)(nil), ""},
		{"pointer", func() *int { n := 5; return &n }(), "5"},
		{"float32", float32(1.5), "1.5"},
		{"bytes", []byte("raw"), "raw"},
		{"error", errors.New("boom"), "boom"},
		{"list", []int{1, 2}, "[1 2]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToText(tt.value))
		})
	}
}

func TestToList(t *testing.T) {
	list, err := ToList("join", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"a", "b"}, list)

	list, err = ToList("join", nil)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = ToList("join", "abc")
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, "join", argErr.Helper)
	assert.Equal(t, "a list", argErr.Expected)
}

func TestToInt(t *testing.T) {
	for _, v := range []interface{}{2, int64(2), uint(2), 2.0, float32(2), "2"} {
		n, err := ToInt("index", v)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	}

	for _, v := range []interface{}{nil, 2.5, float32(0.5), "two", "2.5", true, false, []int{2}} {
		_, err := ToInt("index", v)
		var argErr *ArgumentError
		assert.True(t, errors.As(err, &argErr), "%v", v)
	}
}
