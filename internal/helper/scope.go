package helper

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Scope is an immutable layered rendering context. Every method that changes
// the context returns a new layer on top of the receiver; the receiver itself is
// never modified.
type Scope struct {
	parent *Scope

	// rebind layers carry the active value
	rebind bool
	this   interface{}

	// binding layers carry one named value
	bound bool
	name  string
	value interface{}

	// data layers carry private variables such as index or first
	data map[string]interface{}
}

// NewScope creates a root scope whose active value is this
func NewScope(this interface{}) *Scope {
	return &Scope{rebind: true, this: this}
}

// Derive returns a scope with one more binding
func (s *Scope) Derive(name string, value interface{}) *Scope {
	return &Scope{parent: s, bound: true, name: name, value: value}
}

// Rebind returns a scope whose active value is this. Bindings of the receiver
// are left behind.
func (s *Scope) Rebind(this interface{}) *Scope {
	return &Scope{parent: s, rebind: true, this: this}
}

// WithData returns a scope with the given private variables layered on top
func (s *Scope) WithData(data map[string]interface{}) *Scope {
	layer := make(map[string]interface{}, len(data))
	for k, v := range data {
		layer[k] = v
	}
	return &Scope{parent: s, data: layer}
}

// This returns the active value
func (s *Scope) This() interface{} {
	for l := s; l != nil; l = l.parent {
		if l.rebind {
			return l.this
		}
	}
	return nil
}

// Data returns the private variable name from the innermost data layer defining it
func (s *Scope) Data(name string) (interface{}, bool) {
	for l := s; l != nil; l = l.parent {
		if v, ok := l.data[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// DataMap returns every visible private variable, inner layers shadowing outer ones
func (s *Scope) DataMap() map[string]interface{} {
	merged := map[string]interface{}{}
	var layers []*Scope
	for l := s; l != nil; l = l.parent {
		layers = append(layers, l)
	}
	for i := len(layers) - 1; i >= 0; i-- {
		for k, v := range layers[i].data {
			merged[k] = v
		}
	}
	return merged
}

// Bindings returns the bindings layered since the active value was last set.
// Outer bindings come first, so later ones shadow earlier ones when merged.
func (s *Scope) Bindings() map[string]interface{} {
	var layers []*Scope
	for l := s; l != nil && !l.rebind; l = l.parent {
		if l.bound {
			layers = append(layers, l)
		}
	}
	bindings := make(map[string]interface{}, len(layers))
	for i := len(layers) - 1; i >= 0; i-- {
		bindings[layers[i].name] = layers[i].value
	}
	return bindings
}

// Context returns the value a template engine should render against: the
// active value, or its fields merged with the bindings when there are any.
func (s *Scope) Context() interface{} {
	bindings := s.Bindings()
	if len(bindings) == 0 {
		return s.This()
	}

	this := s.This()
	ctx := boundContext{}
	flat := fields(this)
	for k, v := range flat {
		ctx[k] = v
	}
	for k, v := range bindings {
		ctx[k] = v
	}
	if flat == nil && !isNil(this) {
		ctx[thisKey] = this
	}
	return ctx
}

// thisKey holds a scalar active value in a bound context. Handlebars
// reserves the name, so templates cannot shadow it.
const thisKey = "this"

// boundContext is a bound scope flattened for a template engine. It prints
// as its scalar active value, if it has one.
type boundContext map[string]interface{}

func (c boundContext) String() string {
	if this, ok := c[thisKey]; ok {
		return ToText(this)
	}
	return fmt.Sprint(map[string]interface{}(c))
}

// fields flattens the top level of a map or struct into name/value pairs.
// Exported struct fields are also reachable with a lower-case first letter.
func fields(value interface{}) map[string]interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case map[string]interface{}:
		return v
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out

	case reflect.Struct:
		out := map[string]interface{}{}
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			v := rv.Field(i).Interface()
			out[f.Name] = v
			if alias := lowerFirst(f.Name); alias != f.Name {
				if _, taken := out[alias]; !taken {
					out[alias] = v
				}
			}
		}
		return out
	}

	return nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
