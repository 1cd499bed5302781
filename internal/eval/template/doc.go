// Package template provides a Handlebars template engine for code generation
// templates.
//
// The engine wraps raymond and calls the helpers of a helper.Registry. Helpers
// are registered on the engine directly or through codegen:
//
//	engine := template.NewEngine(nil, logger)
//	if _, err := codegen.RegisterHelpers(engine, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	data := map[string]interface{}{
//	    "name":   "user_account",
//	    "fields": []string{"id", "email"},
//	}
//
//	tmpl := "type {{camel_case name}} struct {\n" +
//	    "{{#indent}}{{#each fields}}{{camel_case this}} string\n{{/each}}{{/indent}}{{close_curly}}"
//	result, err := engine.Render(tmpl, data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Output: type UserAccount struct {
//	//           Id string
//	//           Email string
//	//         }
//
// Raymond helpers take a fixed number of arguments and cannot tell whether
// they were called with a block, so every call site of a registered helper is
// renamed to name:mode:argc before parsing, and a helper of that exact shape is
// bound to the parsed template:
//
//	{{indent "\t" body}}    # indent:value:2
//	{{#indent}}...{{/indent}} # indent:block:0
//
// A call site with an argument count the helper does not accept fails to
// compile with a *helper.ArgumentError. A bare {{name}} stays a variable lookup,
// and a call that fits a raymond builtin such as {{#with person}} is left to
// raymond.
//
// Helper output is never HTML escaped. Errors returned by helpers abort the
// render and are returned wrapped by Render.
package template
