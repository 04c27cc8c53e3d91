package encryption

// EncryptOrEmpty is Encrypt without an error return.
// On failure it logs the error and returns an empty string, which callers
// cannot tell apart from a failed call on their own.
func (c *Codec) EncryptOrEmpty(plaintext string) string {
	encoded, err := c.Encrypt(plaintext)
	if err != nil {
		c.logger.Error("encryption failed", "error", err)

		return ""
	}

	return encoded
}

// DecryptOrEmpty is Decrypt without an error return.
// On failure it logs the error and returns an empty string, the same value
// an encrypted empty plaintext decrypts to.
func (c *Codec) DecryptOrEmpty(encoded string) string {
	plaintext, err := c.Decrypt(encoded)
	if err != nil {
		c.logger.Error("decryption failed", "error", err, "input_length", len(encoded))

		return ""
	}

	return plaintext
}
