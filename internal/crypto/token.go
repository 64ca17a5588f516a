// Package crypto encrypts OAuth tokens at rest. Values are sealed with
// nacl/secretbox and stored with an "enc:" prefix so plaintext rows written
// before encryption was enabled still decrypt as themselves.
package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/nacl/secretbox"
)

const encPrefix = "enc:"

var ErrDecryptFailed = errors.New("token decryption failed")

// TokenCipher seals and opens token strings with a fixed 32-byte key.
// A nil TokenCipher (no key configured) passes values through unchanged,
// which keeps local development working without a key.
type TokenCipher struct {
	key [32]byte
}

// NewTokenCipher parses a base64-encoded 32-byte key. An empty key returns
// a nil cipher, meaning encryption is disabled.
func NewTokenCipher(base64Key string) (*TokenCipher, error) {
	if base64Key == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(base64Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode encryption key: %w", err)
	}
	if len(raw) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(raw))
	}

	c := &TokenCipher{}
	copy(c.key[:], raw)
	return c, nil
}

// Encrypt seals the token and prefixes the result. Empty tokens are
// returned as-is.
func (c *TokenCipher) Encrypt(token string) (string, error) {
	if c == nil || token == "" {
		return token, nil
	}

	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(token), &nonce, &c.key)
	return encPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a sealed token. Values without the "enc:" prefix are
// treated as plaintext and returned unchanged.
func (c *TokenCipher) Decrypt(value string) (string, error) {
	if !strings.HasPrefix(value, encPrefix) {
		return value, nil
	}
	if c == nil {
		return "", fmt.Errorf("%w: encrypted value but no key configured", ErrDecryptFailed)
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, encPrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}
	if len(raw) < 24 {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryptFailed)
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plain, ok := secretbox.Open(nil, raw[24:], &nonce, &c.key)
	if !ok {
		return "", ErrDecryptFailed
	}
	return string(plain), nil
}
