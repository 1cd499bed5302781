package helper

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Registry maps directive names to helper descriptors
type Registry struct {
	helpers map[string]Descriptor
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewRegistry creates an empty registry
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		helpers: make(map[string]Descriptor),
		logger:  logger,
	}
}

// Register validates d and stores it under its name, replacing any helper
// already registered under that name.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	_, replaced := r.helpers[d.Name]
	r.helpers[d.Name] = d
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("helper replaced", zap.String("helper", d.Name))
	} else {
		r.logger.Debug("helper registered",
			zap.String("helper", d.Name),
			zap.Stringer("value_arity", d.Value),
			zap.Stringer("block_arity", d.Block),
		)
	}

	return nil
}

// Lookup returns the descriptor registered under name
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.helpers[name]
	return d, ok
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.helpers))
	for name := range r.helpers {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Invoke calls the helper registered under name
func (r *Registry) Invoke(name string, inv *Invocation) (string, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownHelper, name)
	}
	if inv.Name == "" {
		inv.Name = name
	}
	return d.Invoke(inv)
}
