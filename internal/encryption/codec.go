package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
)

// Codec encrypts and decrypts text using AES-CBC with a random IV per call.
// It is safe for concurrent use as long as its random source is.
type Codec struct {
	// block is the AES cipher initialized from the key
	block cipher.Block

	// random provides the IV bytes
	random io.Reader

	// logger receives diagnostics from the fail-soft operations
	logger hclog.Logger
}

// Option configures a Codec.
type Option func(*Codec)

// WithLogger sets the diagnostic sink used by EncryptOrEmpty and DecryptOrEmpty.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Codec) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRandom sets the source of IV bytes.
// The reader must be safe for concurrent use if the Codec is shared.
func WithRandom(random io.Reader) Option {
	return func(c *Codec) {
		if random != nil {
			c.random = random
		}
	}
}

// NewCodec creates a Codec for the given key.
// The key must be 16, 24 or 32 bytes long.
func NewCodec(key []byte, opts ...Option) (*Codec, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	codec := &Codec{
		block:  block,
		random: rand.Reader,
		logger: hclog.NewNullLogger(),
	}

	for _, opt := range opts {
		opt(codec)
	}

	return codec, nil
}

// Encrypt encrypts the plaintext and returns the Base64 encoding of the IV
// followed by the ciphertext.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	if !utf8.ValidString(plaintext) {
		return "", ErrInvalidUTF8
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	data := make([]byte, aes.BlockSize+len(padded))
	iv := data[:aes.BlockSize]

	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("generating IV: %w", err)
	}

	cbcMode := cipher.NewCBCEncrypter(c.block, iv)
	cbcMode.CryptBlocks(data[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(data), nil
}

// Decrypt reverses Encrypt: it decodes the Base64 text, splits off the IV,
// decrypts and unpads the remainder.
func (c *Codec) Decrypt(encoded string) (string, error) {
	// The standard decoder skips CR and LF, which would accept wrapped or padded input.
	if strings.ContainsAny(encoded, "\r\n") {
		return "", fmt.Errorf("%w: line breaks are not allowed", ErrInvalidEncoding)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	if len(data) < aes.BlockSize {
		return "", fmt.Errorf("%w: %d bytes", ErrCiphertextTooShort, len(data))
	}

	iv := data[:aes.BlockSize]
	ciphertext := data[aes.BlockSize:]

	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrInvalidBlockSize
	}

	plaintext := make([]byte, len(ciphertext))

	cbcMode := cipher.NewCBCDecrypter(c.block, iv)
	cbcMode.CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext)
	if err != nil {
		return "", fmt.Errorf("removing padding: %w", err)
	}

	if !utf8.Valid(unpadded) {
		return "", ErrInvalidUTF8
	}

	return string(unpadded), nil
}
