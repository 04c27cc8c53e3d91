package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to unpad empty data.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when PKCS7 padding is malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidBlockSize is returned when encrypted data length is not aligned with AES block size.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of block size")
	// ErrInvalidKeySize is returned when the key is not 16, 24 or 32 bytes long.
	ErrInvalidKeySize = errors.New("key must be 16, 24 or 32 bytes")
	// ErrInvalidEncoding is returned when the encoded ciphertext is not valid Base64.
	ErrInvalidEncoding = errors.New("invalid base64 encoding")
	// ErrCiphertextTooShort is returned when the decoded data cannot hold an IV.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrInvalidUTF8 is returned when a plaintext is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8 text")
	// ErrUnknownDerivation is returned for an unsupported passphrase derivation.
	ErrUnknownDerivation = errors.New("unknown key derivation")
)
