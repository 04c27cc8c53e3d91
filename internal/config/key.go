package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/key"
	mask "github.com/showa-93/go-mask"

	"github.com/idelchi/textenc/internal/encryption"
)

// ErrNoKey is returned when no key source is configured.
var ErrNoKey = errors.New("no key configured: set --key, --key-file or --passphrase")

// ResolveKey returns the key bytes from the configured key source.
func (c Config) ResolveKey() ([]byte, error) {
	switch {
	case c.Key != "":
		return fromHex(c.Key)
	case c.KeyFile != "":
		data, err := os.ReadFile(c.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		return fromHex(string(data))
	case c.Passphrase != "":
		key, err := encryption.KeyFromPassphrase(c.Passphrase, encryption.Derivation(c.Derive))
		if err != nil {
			return nil, fmt.Errorf("deriving key from passphrase: %w", err)
		}

		return key, nil
	default:
		return nil, ErrNoKey
	}
}

// fromHex decodes a hex key, ignoring surrounding whitespace, and checks its size.
func fromHex(s string) (key.Key, error) {
	decoded, err := key.FromHex(s)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	switch len(decoded) {
	case 16, 24, 32:
		return decoded, nil
	default:
		return nil, fmt.Errorf("%w: got %d (32, 48 or 64 hex characters)", encryption.ErrInvalidKeySize, len(decoded))
	}
}

// Masked returns a copy of the configuration with secrets masked.
func (c Config) Masked() (Config, error) {
	masked, err := mask.Mask(c)
	if err != nil {
		return Config{}, fmt.Errorf("masking configuration: %w", err)
	}

	return masked, nil
}
