package helper

// Mode tells a handler whether it was called with a block
type Mode int

const (
	// ValueMode is a plain directive: {{name arg}}
	ValueMode Mode = iota

	// BlockMode is a block directive: {{#name arg}}...{{/name}}
	BlockMode
)

// String returns the mode name
func (m Mode) String() string {
	if m == BlockMode {
		return "block"
	}
	return "value"
}

// Block is a compiled nested template fragment supplied by the engine
type Block interface {
	// Render renders the fragment under the given scope
	Render(scope *Scope) (string, error)

	// Inverse renders the {{else}} fragment, or returns "" when there is none
	Inverse(scope *Scope) (string, error)
}

// Invocation is a single helper call made by the engine
type Invocation struct {
	// Name is the directive the helper was invoked as
	Name string

	// Scope is the rendering context at the call site
	Scope *Scope

	// Args are the positional arguments, already resolved by the engine
	Args []interface{}

	// Block is nil in value mode
	Block Block
}

// Mode returns the calling shape of the invocation
func (inv *Invocation) Mode() Mode {
	if inv.Block != nil {
		return BlockMode
	}
	return ValueMode
}

// Arg returns the positional argument at pos, or nil when absent
func (inv *Invocation) Arg(pos int) interface{} {
	if pos < 0 || pos >= len(inv.Args) {
		return nil
	}
	return inv.Args[pos]
}

// Render renders the block under scope
func (inv *Invocation) Render(scope *Scope) (string, error) {
	if inv.Block == nil {
		return "", &ArgumentError{Helper: inv.Name, Expected: "a block", Got: "none"}
	}
	return inv.Block.Render(scope)
}

// Inverse renders the {{else}} fragment of the block under scope
func (inv *Invocation) Inverse(scope *Scope) (string, error) {
	if inv.Block == nil {
		return "", nil
	}
	return inv.Block.Inverse(scope)
}

// Content is the text a transforming helper works on: either the literal
// value passed in value mode or the rendered block in block mode.
type Content struct {
	Mode Mode
	Text string
}
