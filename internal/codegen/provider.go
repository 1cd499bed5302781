package codegen

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aescanero/dago-codegen-helpers/internal/helper"
)

const (
	// OptionIndentation names the option holding the default indent string
	OptionIndentation = "indentation"

	// DefaultIndentation is used when no indentation option is set
	DefaultIndentation = "  "
)

// Settings are the typed provider options
type Settings struct {
	Indentation string `mapstructure:"indentation"`
}

// Provider supplies the code generation helpers. It is read-only after
// construction and may be shared by any number of engines.
type Provider struct {
	settings Settings
}

// NewProvider creates a provider from an option mapping. Unknown options are
// ignored.
func NewProvider(options map[string]interface{}) (*Provider, error) {
	p := &Provider{}
	if err := mapstructure.Decode(options, &p.settings); err != nil {
		return nil, fmt.Errorf("failed to decode helper options: %w", err)
	}
	if p.settings.Indentation == "" {
		p.settings.Indentation = DefaultIndentation
	}

	return p, nil
}

// Indentation returns the indent string used when indent gets no argument
func (p *Provider) Indentation() string {
	return p.settings.Indentation
}

// StringHelpers returns the single string conversion helpers
func (p *Provider) StringHelpers() []helper.Descriptor {
	return stringHelpers()
}

// CustomHelpers returns the text block and iteration helpers. Types embedding
// *Provider override it to contribute their own helpers.
func (p *Provider) CustomHelpers() []helper.Descriptor {
	helpers := p.textHelpers()
	return append(helpers, p.iterationHelpers()...)
}
