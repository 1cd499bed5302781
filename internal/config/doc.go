// Package config provides configuration management for the render command.
//
// Configuration is loaded from environment variables and validated on startup.
// Only TEMPLATE_FILE is required; DATA_FILE and OUTPUT_FILE are optional and
// HELPERS_INDENTATION defaults to two spaces.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider, err := codegen.RegisterHelpers(engine, cfg.HelperOptions())
package config
