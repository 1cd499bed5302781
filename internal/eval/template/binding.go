package template

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aymerick/raymond"
	"github.com/aymerick/raymond/lexer"

	"github.com/aescanero/dago-codegen-helpers/internal/helper"
)

var (
	anyType        = reflect.TypeOf((*interface{})(nil)).Elem()
	optionsType    = reflect.TypeOf((*raymond.Options)(nil))
	safeStringType = reflect.TypeOf(raymond.SafeString(""))
)

// builtins are the raymond helpers with their argument counts. A call site
// matching one of them but none of our helpers is left to raymond.
var builtins = map[string]int{
	"if":     1,
	"unless": 1,
	"with":   1,
	"each":   1,
	"log":    1,
	"lookup": 2,
	"equal":  2,
}

// rootData are the private variables copied from raymond into the call scope
var rootData = []string{"index", "key", "first", "last"}

// site is a helper call in a template source
type site struct {
	name string
	mode helper.Mode
	argc int
}

// alias is the helper name a call site is rewritten to. Raymond helpers have a
// fixed arity and cannot tell block calls from value calls, so every shape gets
// its own helper.
func (s site) alias() string {
	return fmt.Sprintf("%s:%s:%d", s.name, s.mode, s.argc)
}

// rewrite renames every call site of a registered helper to its alias and
// returns the rewritten source with the distinct sites found.
func rewrite(source string, registry *helper.Registry) (string, []site, error) {
	tokens := lexer.Collect(source)

	var (
		b     strings.Builder
		last  int
		stack []*site
		sites = map[string]site{}
		order []string
	)

	replace := func(tok lexer.Token, with string) {
		if !strings.HasPrefix(source[tok.Pos:], tok.Val) {
			return
		}
		b.WriteString(source[last:tok.Pos])
		b.WriteString(with)
		last = tok.Pos + len(tok.Val)
	}

	for i := 0; i+1 < len(tokens); i++ {
		tok, next := tokens[i], tokens[i+1]

		switch tok.Kind {
		case lexer.TokenError:
			// raymond reports it when parsing
			i = len(tokens)
			continue

		case lexer.TokenOpenEndBlock:
			var open *site
			if n := len(stack); n > 0 {
				open, stack = stack[n-1], stack[:n-1]
			}
			if open != nil && next.Kind == lexer.TokenID && next.Val == open.name {
				replace(next, open.alias())
			}
			continue

		case lexer.TokenOpenInverse:
			stack = append(stack, nil)
			continue

		case lexer.TokenOpen, lexer.TokenOpenUnescaped, lexer.TokenOpenSexpr, lexer.TokenOpenBlock:
		default:
			continue
		}

		s, err := callSite(tokens, i, registry)
		if err != nil {
			return "", nil, err
		}
		if tok.Kind == lexer.TokenOpenBlock {
			stack = append(stack, s)
		}
		if s == nil {
			continue
		}

		replace(next, s.alias())
		if _, ok := sites[s.alias()]; !ok {
			sites[s.alias()] = *s
			order = append(order, s.alias())
		}
	}
	b.WriteString(source[last:])

	found := make([]site, len(order))
	for i, alias := range order {
		found[i] = sites[alias]
	}
	return b.String(), found, nil
}

// callSite returns the helper call opened by tokens[i], or nil when the
// expression is not one.
func callSite(tokens []lexer.Token, i int, registry *helper.Registry) (*site, error) {
	open, id := tokens[i], tokens[i+1]
	if id.Kind != lexer.TokenID {
		return nil, nil
	}
	if i+2 < len(tokens) && tokens[i+2].Kind == lexer.TokenSep {
		return nil, nil
	}

	d, ok := registry.Lookup(id.Val)
	if !ok {
		return nil, nil
	}

	s := &site{name: id.Val, mode: helper.ValueMode, argc: countParams(tokens, i+2)}
	if open.Kind == lexer.TokenOpenBlock {
		s.mode = helper.BlockMode
	}

	arity := d.Arity(s.mode)
	switch {
	case arity.Accepts(s.argc):
		return s, nil
	case s.mode == helper.ValueMode && s.argc == 0 && open.Kind != lexer.TokenOpenSexpr:
		// plain {{name}} stays a variable lookup
		return nil, nil
	}
	if n, ok := builtins[s.name]; ok && n == s.argc {
		return nil, nil
	}

	return nil, &helper.ArgumentError{
		Helper:   s.name,
		Expected: fmt.Sprintf("%s arguments in %s mode", arity, s.mode),
		Got:      fmt.Sprintf("%d on line %d", s.argc, id.Line),
	}
}

// countParams counts the positional parameters of the expression starting at
// tokens[start]. Hash arguments and block params are not counted.
func countParams(tokens []lexer.Token, start int) int {
	depth, count := 0, 0

	for j := start; j < len(tokens); j++ {
		tok := tokens[j]

		switch tok.Kind {
		case lexer.TokenClose, lexer.TokenCloseUnescaped, lexer.TokenOpenBlockParams,
			lexer.TokenEOF, lexer.TokenError:
			return count

		case lexer.TokenOpenSexpr:
			if depth == 0 {
				count++
			}
			depth++

		case lexer.TokenCloseSexpr:
			if depth == 0 {
				return count
			}
			depth--

		case lexer.TokenEquals:
			if depth == 0 {
				// the key before '=' was counted
				return count - 1
			}

		case lexer.TokenID, lexer.TokenString, lexer.TokenNumber, lexer.TokenBoolean, lexer.TokenData:
			if depth > 0 {
				continue
			}
			if prev := tokens[j-1].Kind; prev == lexer.TokenSep || prev == lexer.TokenData {
				continue
			}
			count++
		}
	}

	return count
}

// helperFunc builds the raymond helper for one call site shape. Calls go
// through the registry, so a replaced helper takes effect on the next render.
func helperFunc(s site, registry *helper.Registry) interface{} {
	in := make([]reflect.Type, s.argc+1)
	for i := 0; i < s.argc; i++ {
		in[i] = anyType
	}
	in[s.argc] = optionsType

	fnType := reflect.FuncOf(in, []reflect.Type{safeStringType}, false)

	return reflect.MakeFunc(fnType, func(args []reflect.Value) []reflect.Value {
		options := args[s.argc].Interface().(*raymond.Options)

		params := make([]interface{}, s.argc)
		for i := range params {
			params[i] = args[i].Interface()
		}

		scope := rootScope(options)
		inv := &helper.Invocation{Name: s.name, Scope: scope, Args: params}
		if s.mode == helper.BlockMode {
			inv.Block = &optionsBlock{options: options, root: scope}
		}

		out, err := registry.Invoke(s.name, inv)
		if err != nil {
			// raymond recovers error panics and returns them from Exec
			panic(err)
		}
		return []reflect.Value{reflect.ValueOf(raymond.SafeString(out))}
	}).Interface()
}

// rootScope is the scope of a call site: the current context plus raymond's
// iteration variables
func rootScope(options *raymond.Options) *helper.Scope {
	data := map[string]interface{}{}
	for _, name := range rootData {
		if v := options.Data(name); v != nil {
			data[name] = v
		}
	}
	return helper.NewScope(options.Ctx()).WithData(data)
}

// optionsBlock renders a raymond block under a helper scope
type optionsBlock struct {
	options *raymond.Options
	root    *helper.Scope
}

func (b *optionsBlock) Render(scope *helper.Scope) (string, error) {
	if scope == b.root {
		return b.options.Fn(), nil
	}

	frame := b.options.NewDataFrame()
	for k, v := range scope.DataMap() {
		frame.Set(k, v)
	}
	return b.options.FnCtxData(scope.Context(), frame), nil
}

func (b *optionsBlock) Inverse(*helper.Scope) (string, error) {
	return b.options.Inverse(), nil
}
