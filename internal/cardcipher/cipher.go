// Package cardcipher encrypts card numbers at rest and masks them for display.
package cardcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	ivSize     = 16
	keySize    = 32
	iterations = 1024
	maskChar   = "*"
	visible    = 4
)

// ErrCipher is returned when a stored card number can't be decoded or decrypted.
var ErrCipher = errors.New("card number cipher failure")

// Cipher is an AES-256-GCM card number encryptor. The key is derived once
// from the configured secret and hex salt.
type Cipher struct {
	aead cipher.AEAD
}

// New derives the key and returns a ready Cipher.
func New(secret, hexSalt string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret is empty")
	}
	if hexSalt == "" {
		return nil, errors.New("encryption salt is empty")
	}
	salt, err := hex.DecodeString(hexSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption salt: %w", err)
	}

	key := pbkdf2.Key([]byte(secret), salt, iterations, keySize, sha1.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcm: %w", err)
	}

	return &Cipher{aead: aead}, nil
}

// Encrypt returns base64(iv || ciphertext || tag). Empty input is returned as is.
func (c *Cipher) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}

	iv := make([]byte, ivSize, ivSize+len(plain)+c.aead.Overhead())
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate iv: %w", err)
	}
	out := c.aead.Seal(iv, iv, []byte(plain), nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. Empty input is returned as is.
func (c *Cipher) Decrypt(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}
	if len(raw) < ivSize+c.aead.Overhead() {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCipher)
	}

	plain, err := c.aead.Open(nil, raw[:ivSize], raw[ivSize:], nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCipher, err)
	}

	return string(plain), nil
}

// Mask keeps the length of plain and hides everything but the last four characters.
func (c *Cipher) Mask(plain string) string {
	return Mask(plain)
}

// Mask is the package-level form of Cipher.Mask.
func Mask(plain string) string {
	if len(plain) <= visible {
		return plain
	}
	return strings.Repeat(maskChar, len(plain)-visible) + plain[len(plain)-visible:]
}
