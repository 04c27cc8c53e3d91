package encryption

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// Derivation selects how a passphrase is turned into key bytes.
type Derivation string

const (
	// DeriveRaw uses the UTF-8 bytes of the passphrase as the key.
	DeriveRaw Derivation = "raw"
	// DeriveHKDF stretches the passphrase to a 32-byte key with HKDF-SHA256.
	DeriveHKDF Derivation = "hkdf"
)

// AesKeySize is the key size produced by DeriveHKDF.
const AesKeySize = 32

const passphraseInfo = "textenc/passphrase"

// KeyFromPassphrase turns a passphrase into key bytes using the given derivation.
// DeriveRaw requires the passphrase to be 16, 24 or 32 bytes long.
func KeyFromPassphrase(passphrase string, derivation Derivation) ([]byte, error) {
	switch derivation {
	case DeriveRaw, "":
		key := []byte(passphrase)

		switch len(key) {
		case 16, 24, 32:
			return key, nil
		default:
			return nil, fmt.Errorf("%w: raw passphrase is %d bytes", ErrInvalidKeySize, len(key))
		}
	case DeriveHKDF:
		if passphrase == "" {
			return nil, fmt.Errorf("%w: empty passphrase", ErrInvalidKeySize)
		}

		reader := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(passphraseInfo))
		key := make([]byte, AesKeySize)

		if _, err := io.ReadFull(reader, key); err != nil {
			return nil, fmt.Errorf("deriving key: %w", err)
		}

		return key, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDerivation, derivation)
	}
}
