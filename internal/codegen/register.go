package codegen

import (
	"fmt"

	"github.com/aescanero/dago-codegen-helpers/internal/helper"
)

// Registrar accepts helper registrations, usually a template engine
type Registrar interface {
	Register(d helper.Descriptor) error
}

// Source supplies helper tables. *Provider is a Source, and so is any type
// embedding it.
type Source interface {
	StringHelpers() []helper.Descriptor
	CustomHelpers() []helper.Descriptor
}

// RegisterStringHelpers registers every string helper of src
func RegisterStringHelpers(r Registrar, src Source) error {
	if err := register(r, src.StringHelpers()); err != nil {
		return fmt.Errorf("failed to register string helpers: %w", err)
	}
	return nil
}

// RegisterCustomHelpers registers every custom helper of src
func RegisterCustomHelpers(r Registrar, src Source) error {
	if err := register(r, src.CustomHelpers()); err != nil {
		return fmt.Errorf("failed to register custom helpers: %w", err)
	}
	return nil
}

// RegisterSource runs both registration passes for src
func RegisterSource(r Registrar, src Source) error {
	if err := RegisterStringHelpers(r, src); err != nil {
		return err
	}
	return RegisterCustomHelpers(r, src)
}

// RegisterHelpers builds a provider from options and registers all of its
// helpers with r.
func RegisterHelpers(r Registrar, options map[string]interface{}) (*Provider, error) {
	p, err := NewProvider(options)
	if err != nil {
		return nil, err
	}
	if err := RegisterSource(r, p); err != nil {
		return nil, err
	}
	return p, nil
}

// register validates the whole pass before registering anything
func register(r Registrar, descriptors []helper.Descriptor) error {
	seen := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return err
		}
		if seen[d.Name] {
			return &helper.RegistrationError{Helper: d.Name, Reason: "defined twice in one registration pass"}
		}
		seen[d.Name] = true
	}

	for _, d := range descriptors {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("helper %q: %w", d.Name, err)
		}
	}
	return nil
}
