package encryption_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/idelchi/textenc/internal/encryption"
)

func TestKeyFromPassphrase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		passphrase string
		derivation encryption.Derivation
		size       int
		want       error
	}{
		{name: "raw 32", passphrase: "examplesecretkeyexamplesecretkey", derivation: encryption.DeriveRaw, size: 32},
		{name: "raw 16", passphrase: "examplesecretkey", derivation: encryption.DeriveRaw, size: 16},
		{name: "default is raw", passphrase: "examplesecretkey", size: 16},
		{name: "raw wrong length", passphrase: "short", derivation: encryption.DeriveRaw, want: encryption.ErrInvalidKeySize},
		{name: "hkdf any length", passphrase: "short", derivation: encryption.DeriveHKDF, size: 32},
		{name: "hkdf empty", passphrase: "", derivation: encryption.DeriveHKDF, want: encryption.ErrInvalidKeySize},
		{name: "unknown", passphrase: "x", derivation: "scrypt", want: encryption.ErrUnknownDerivation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			key, err := encryption.KeyFromPassphrase(tc.passphrase, tc.derivation)
			if tc.want != nil {
				if !errors.Is(err, tc.want) {
					t.Fatalf("error = %v, want %v", err, tc.want)
				}

				return
			}

			if err != nil {
				t.Fatalf("KeyFromPassphrase: %v", err)
			}

			if len(key) != tc.size {
				t.Errorf("key size = %d, want %d", len(key), tc.size)
			}
		})
	}
}

func TestKeyFromPassphraseHKDFIsStable(t *testing.T) {
	t.Parallel()

	first, err := encryption.KeyFromPassphrase("passphrase", encryption.DeriveHKDF)
	if err != nil {
		t.Fatal(err)
	}

	second, err := encryption.KeyFromPassphrase("passphrase", encryption.DeriveHKDF)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Error("derivation is not deterministic")
	}

	other, err := encryption.KeyFromPassphrase("Passphrase", encryption.DeriveHKDF)
	if err != nil {
		t.Fatal(err)
	}

	if bytes.Equal(first, other) {
		t.Error("different passphrases derived the same key")
	}
}
