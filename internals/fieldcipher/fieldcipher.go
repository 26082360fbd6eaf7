// Package fieldcipher is the field-level encryption capability. Services
// call it explicitly at the persistence boundary; nothing is intercepted.
package fieldcipher

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/chacha20poly1305"
)

var ErrCiphertext = errors.New("fieldcipher: malformed ciphertext")

// Cipher holds the process-wide key pair: an encryption key for field
// values and a signing key for name-hash lookups.
type Cipher struct {
	encKey []byte
	sigKey []byte
}

// New derives fixed-size keys from the configured key strings.
func New(encryptionKey, signingKey string) *Cipher {
	ek := sha256.Sum256([]byte(encryptionKey))
	sk := sha256.Sum256([]byte(signingKey))
	return &Cipher{encKey: ek[:], sigKey: sk[:]}
}

// EncryptField returns base64(nonce||ciphertext). Empty input stays empty so
// optional fields do not round-trip to opaque blobs.
func (c *Cipher) EncryptField(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}
	aead, err := chacha20poly1305.NewX(c.encKey)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) DecryptField(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", ErrCiphertext
	}
	aead, err := chacha20poly1305.NewX(c.encKey)
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", ErrCiphertext
	}
	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrCiphertext
	}
	return string(plain), nil
}

// NameHash is the deterministic lookup key for encrypted names:
// hex(HMAC-SHA256(sigKey, name)).
func (c *Cipher) NameHash(name string) string {
	mac := hmac.New(sha256.New, c.sigKey)
	mac.Write([]byte(name))
	return hex.EncodeToString(mac.Sum(nil))
}
