// Package config holds the runtime configuration of textenc and resolves the key it names.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

// Generate holds parameters for key generation.
type Generate struct {
	// Size is the key size in bytes
	Size int `mapstructure:"size" validate:"oneof=16 24 32"`
}

// Config holds the settings shared by all commands.
type Config struct {
	// Key sources, at most one may be set
	Key        string `mapstructure:"key"        mask:"filled" validate:"omitempty,hexkey,exclusive=KeyFile Passphrase"`
	KeyFile    string `mapstructure:"key-file"                 validate:"omitempty,exclusive=Passphrase"`
	Passphrase string `mapstructure:"passphrase" mask:"filled"`

	// Derive selects how a passphrase becomes a key
	Derive string `mapstructure:"derive" validate:"oneof=raw hkdf"`

	Parallel int  `mapstructure:"parallel" validate:"gte=1"`
	Quiet    bool `mapstructure:"quiet"`
	Stats    bool `mapstructure:"stats"`
	Show     bool `mapstructure:"show"`

	// Output writes results to a file instead of stdout
	Output string `mapstructure:"output"`
	// From reads additional inputs from a JSONC array of strings
	From string `mapstructure:"from"`

	LogLevel string `mapstructure:"log-level" validate:"oneof=trace debug info warn error off"`
	LogJSON  bool   `mapstructure:"log-json"`

	// Generate is validated on its own by the generate command
	Generate Generate `mapstructure:",squash" validate:"-"`

	// Command-specific
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Inputs []string `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	if err := registerHexKey(validator); err != nil {
		return fmt.Errorf("registering hexkey: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}

// HasKey reports whether any key source is configured.
func (c Config) HasKey() bool {
	return c.Key != "" || c.KeyFile != "" || c.Passphrase != ""
}
