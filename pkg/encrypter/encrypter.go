package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// Encrypter encrypts and decrypts short secrets (OAuth tokens) for storage
// at rest. Implementations must be safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// ErrInvalidKeySize is returned when the key is not 32 bytes.
var ErrInvalidKeySize = errors.New("encryption key must be exactly 32 bytes")

// aesGCM implements Encrypter with AES-256-GCM.
// Output format: base64(nonce || ciphertext || tag). A fresh random nonce is
// generated per call; the same key never sees a repeated nonce.
type aesGCM struct {
	key []byte
}

// New creates an AES-256-GCM Encrypter. There is no disabled / passthrough
// mode: a missing or wrong-size key is a configuration error.
func New(key []byte) (Encrypter, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidKeySize, len(key))
	}
	k := make([]byte, 32)
	copy(k, key)
	return &aesGCM{key: k}, nil
}

func (e *aesGCM) Encrypt(plaintext string) (string, error) {
	gcm, err := e.aead()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (e *aesGCM) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	gcm, err := e.aead()
	if err != nil {
		return "", err
	}

	if len(raw) < gcm.NonceSize() {
		return "", errors.New("ciphertext shorter than nonce")
	}

	nonce, sealed := raw[:gcm.NonceSize()], raw[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plain), nil
}

func (e *aesGCM) aead() (cipher.AEAD, error) {
	block, err := aes.NewCipher(e.key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
