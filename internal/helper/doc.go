// Package helper defines how template helpers are described, registered and
// invoked, independently of the template engine that calls them.
//
// A helper is a Descriptor: a directive name, the number of positional
// arguments it accepts with and without a block, and a Handler.
//
//	registry := helper.NewRegistry(logger)
//	err := registry.Register(helper.Transform("shout", helper.Exactly(0),
//	    func(c helper.Content, _ []interface{}) (string, error) {
//	        return strings.ToUpper(c.Text), nil
//	    }))
//
// The engine invokes a helper with an Invocation. A nil Block means value mode
// ({{shout name}}); otherwise the helper is in block mode
// ({{#shout}}...{{/shout}}) and renders the block itself:
//
//	out, err := registry.Invoke("shout", &helper.Invocation{
//	    Scope: helper.NewScope(data),
//	    Args:  []interface{}{"hello"},
//	})
//	// out == "HELLO"
//
// Transform builds helpers that apply the same transformation to a literal
// value or to the rendered block; handlers that need more control switch on
// Invocation.Mode.
//
// Scope is the rendering context: an immutable layered set of bindings. Derive
// adds a named binding, Rebind changes the active value ("this") and WithData
// adds private iteration variables such as @index. A layer never changes its
// parent, so sibling renders can share one parent scope.
//
// Errors returned by handlers are typed: *ArgumentError for a value of the
// wrong shape or a wrong argument count, *IndexError for an out of range list
// index, and *RegistrationError for a descriptor that cannot be registered.
package helper
