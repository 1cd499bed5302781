package template

import (
	"fmt"
	"sync"

	"github.com/aymerick/raymond"
	"go.uber.org/zap"

	"github.com/aescanero/dago-codegen-helpers/internal/helper"
)

// Engine renders Handlebars templates with registered helpers
type Engine struct {
	registry *helper.Registry
	cache    map[string]*raymond.Template
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewEngine creates a new template engine. A nil registry starts empty.
func NewEngine(registry *helper.Registry, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = helper.NewRegistry(logger)
	}

	return &Engine{
		registry: registry,
		cache:    make(map[string]*raymond.Template),
		logger:   logger,
	}
}

// Register adds a helper. Templates compiled before are compiled again on
// their next render.
func (e *Engine) Register(d helper.Descriptor) error {
	if err := e.registry.Register(d); err != nil {
		return err
	}
	e.ClearCache()
	return nil
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data interface{}) (string, error) {
	// Get or compile template
	tmpl, err := e.getTemplate(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	// Helpers read the current context, which must not be nil
	if data == nil {
		data = map[string]interface{}{}
	}

	// Execute the template
	result, err := tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// getTemplate gets a compiled template from cache or compiles it
func (e *Engine) getTemplate(templateStr string) (*raymond.Template, error) {
	// Check cache first (read lock)
	e.mu.RLock()
	if tmpl, ok := e.cache[templateStr]; ok {
		e.mu.RUnlock()
		return tmpl, nil
	}
	e.mu.RUnlock()

	e.mu.Lock()
	defer e.mu.Unlock()

	// Check again in case another goroutine compiled it
	if tmpl, ok := e.cache[templateStr]; ok {
		return tmpl, nil
	}

	tmpl, err := e.compile(templateStr)
	if err != nil {
		return nil, err
	}

	e.cache[templateStr] = tmpl
	return tmpl, nil
}

// compile rewrites helper call sites, parses the result and binds one
// raymond helper per call site shape
func (e *Engine) compile(templateStr string) (*raymond.Template, error) {
	source, sites, err := rewrite(templateStr, e.registry)
	if err != nil {
		return nil, err
	}

	tmpl, err := raymond.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	for _, s := range sites {
		tmpl.RegisterHelper(s.alias(), helperFunc(s, e.registry))

		e.logger.Debug("helper bound",
			zap.String("helper", s.name),
			zap.String("alias", s.alias()),
			zap.Int("argc", s.argc),
		)
	}

	e.logger.Debug("template compiled", zap.Int("call_sites", len(sites)))
	return tmpl, nil
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := e.compile(templateStr)
	return err
}

// ClearCache clears the compiled template cache
func (e *Engine) ClearCache() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = make(map[string]*raymond.Template)
	e.logger.Debug("template cache cleared")
}
