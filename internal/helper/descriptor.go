package helper

import (
	"fmt"
	"regexp"
)

// Arity is an inclusive range of accepted positional argument counts
type Arity struct {
	Min int
	Max int
}

// NoArity marks a calling mode a helper does not support
var NoArity = Arity{Min: -1, Max: -1}

// Exactly accepts exactly n arguments
func Exactly(n int) Arity {
	return Arity{Min: n, Max: n}
}

// Between accepts from min to max arguments
func Between(min, max int) Arity {
	return Arity{Min: min, Max: max}
}

// Supported reports whether the mode is supported at all
func (a Arity) Supported() bool {
	return a.Min >= 0
}

// Accepts reports whether n arguments fit the range
func (a Arity) Accepts(n int) bool {
	return a.Supported() && n >= a.Min && n <= a.Max
}

// String returns a readable form of the range
func (a Arity) String() string {
	switch {
	case !a.Supported():
		return "no"
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	default:
		return fmt.Sprintf("%d to %d", a.Min, a.Max)
	}
}

// shift moves both bounds by n, keeping unsupported ranges unsupported
func (a Arity) shift(n int) Arity {
	if !a.Supported() {
		return a
	}
	return Arity{Min: a.Min + n, Max: a.Max + n}
}

// Handler implements a helper
type Handler func(inv *Invocation) (string, error)

// Descriptor describes a helper for registration
type Descriptor struct {
	// Name is the directive name used in templates
	Name string

	// Value is the accepted argument count without a block
	Value Arity

	// Block is the accepted argument count with a block
	Block Arity

	Handler Handler
}

var namePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks that the descriptor can be registered
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return &RegistrationError{Helper: d.Name, Reason: "name is required"}
	}
	if !namePattern.MatchString(d.Name) {
		return &RegistrationError{Helper: d.Name, Reason: "name must be a template identifier"}
	}
	if d.Handler == nil {
		return &RegistrationError{Helper: d.Name, Reason: "handler is required"}
	}
	if !d.Value.Supported() && !d.Block.Supported() {
		return &RegistrationError{Helper: d.Name, Reason: "accepts neither arguments nor a block"}
	}

	for _, mode := range []Mode{ValueMode, BlockMode} {
		arity := d.Arity(mode)
		if arity.Supported() && arity.Min > arity.Max {
			return &RegistrationError{
				Helper: d.Name,
				Reason: fmt.Sprintf("%s mode arity %d exceeds %d", mode, arity.Min, arity.Max),
			}
		}
		if !arity.Supported() && arity != NoArity {
			return &RegistrationError{Helper: d.Name, Reason: fmt.Sprintf("invalid %s mode arity", mode)}
		}
	}

	return nil
}

// Arity returns the accepted argument count for mode
func (d Descriptor) Arity(mode Mode) Arity {
	if mode == BlockMode {
		return d.Block
	}
	return d.Value
}

// Invoke checks the invocation against the descriptor and calls the handler
func (d Descriptor) Invoke(inv *Invocation) (string, error) {
	mode := inv.Mode()
	arity := d.Arity(mode)

	if !arity.Supported() {
		return "", &ArgumentError{
			Helper:   d.Name,
			Expected: fmt.Sprintf("no %s mode call", mode),
			Got:      fmt.Sprintf("a %s mode call", mode),
		}
	}
	if !arity.Accepts(len(inv.Args)) {
		return "", &ArgumentError{
			Helper:   d.Name,
			Expected: fmt.Sprintf("%s arguments in %s mode", arity, mode),
			Got:      fmt.Sprintf("%d", len(inv.Args)),
		}
	}

	if inv.Name == "" {
		inv.Name = d.Name
	}
	if inv.Scope == nil {
		inv.Scope = NewScope(nil)
	}

	return d.Handler(inv)
}

// TransformFunc transforms content; opts are the positional arguments other than the content
type TransformFunc func(c Content, opts []interface{}) (string, error)

// Transform describes a helper that applies fn either to its last argument
// (value mode) or to its rendered block (block mode). opts is the number of
// leading option arguments; value mode takes one more for the text itself.
// A nil value yields "" without calling fn.
func Transform(name string, opts Arity, fn TransformFunc) Descriptor {
	return Descriptor{
		Name:  name,
		Value: opts.shift(1),
		Block: opts,
		Handler: func(inv *Invocation) (string, error) {
			if inv.Mode() == BlockMode {
				text, err := inv.Render(inv.Scope)
				if err != nil {
					return "", err
				}
				return fn(Content{Mode: BlockMode, Text: text}, inv.Args)
			}

			last := len(inv.Args) - 1
			if inv.Args[last] == nil {
				return "", nil
			}
			return fn(Content{Mode: ValueMode, Text: ToText(inv.Args[last])}, inv.Args[:last])
		},
	}
}

// Func describes a value mode helper mapping one string to another
func Func(name string, fn func(string) string) Descriptor {
	return Descriptor{
		Name:  name,
		Value: Exactly(1),
		Block: NoArity,
		Handler: func(inv *Invocation) (string, error) {
			return fn(ToText(inv.Arg(0))), nil
		},
	}
}

// Const describes a value mode helper without arguments that always returns value
func Const(name, value string) Descriptor {
	return Descriptor{
		Name:  name,
		Value: Exactly(0),
		Block: NoArity,
		Handler: func(*Invocation) (string, error) {
			return value, nil
		},
	}
}
