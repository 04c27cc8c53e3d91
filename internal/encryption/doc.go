// Package encryption provides text encryption using AES in CBC mode with a random IV.
// The encoded form is the standard Base64 of the IV followed by the PKCS#7 padded ciphertext.
// Accepts 16, 24 or 32-byte keys, selecting AES-128, AES-192 or AES-256.
package encryption
