// Package codegen provides the helpers used by code generation templates.
//
// A Provider holds the helper tables and the options they read. Helpers are
// registered in two passes: the string helpers, which convert one name into
// another (underscore, camel_case, ...), and the custom helpers, which work on
// whole rendered fragments (indent, join, comment, ...).
//
//	engine := template.NewEngine(nil, logger)
//	provider, err := codegen.RegisterHelpers(engine, map[string]interface{}{
//	    codegen.OptionIndentation: "\t",
//	})
//
// Every text helper works on a literal value or on its block:
//
//	{{indent body}}
//	{{#indent "    "}}
//	func {{camel_case name}}() {}
//	{{/indent}}
//
// join, with, index, first and last control the context their block is
// rendered under:
//
//	{{#join fields ", "}}{{underscore name}}{{else}}none{{/join}}
//	{{#each models}}{{#with this "model"}}{{#each fields}}{{model.name}}.{{name}}{{/each}}{{/with}}{{/each}}
//	{{#first fields}}{{name}}{{/first}}
//
// A provider type can contribute more helpers by embedding *Provider and
// overriding CustomHelpers:
//
//	type goProvider struct{ *codegen.Provider }
//
//	func (p goProvider) CustomHelpers() []helper.Descriptor {
//	    return append(p.Provider.CustomHelpers(), helper.Func("exported", exported))
//	}
//
//	err := codegen.RegisterSource(engine, goProvider{provider})
package codegen
