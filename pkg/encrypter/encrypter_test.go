package encrypter

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func testKey() []byte {
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestNew(t *testing.T) {
	t.Run("Valid Key", func(t *testing.T) {
		if _, err := New(testKey()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Wrong Key Sizes Rejected", func(t *testing.T) {
		for _, size := range []int{0, 16, 24, 31, 33} {
			_, err := New(make([]byte, size))
			if !errors.Is(err, ErrInvalidKeySize) {
				t.Errorf("key size %d: expected ErrInvalidKeySize, got %v", size, err)
			}
		}
	})
}

func TestRoundTrip(t *testing.T) {
	enc, err := New(testKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, plaintext := range []string{"", "ya29.a0AfH6SMBx", strings.Repeat("x", 4096)} {
		ct, err := enc.Encrypt(plaintext)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		if ct == plaintext && plaintext != "" {
			t.Error("ciphertext must differ from plaintext")
		}
		got, err := enc.Decrypt(ct)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if got != plaintext {
			t.Errorf("round trip mismatch: got %q", got)
		}
	}
}

func TestNonceUniqueness(t *testing.T) {
	enc, _ := New(testKey())

	a, _ := enc.Encrypt("same-token")
	b, _ := enc.Encrypt("same-token")
	if a == b {
		t.Error("two encryptions of the same plaintext must not collide")
	}
}

func TestDecryptFailures(t *testing.T) {
	enc, _ := New(testKey())

	t.Run("Invalid Base64", func(t *testing.T) {
		if _, err := enc.Decrypt("not-base64!!"); err == nil {
			t.Error("expected decode error")
		}
	})

	t.Run("Truncated Ciphertext", func(t *testing.T) {
		short := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
		if _, err := enc.Decrypt(short); err == nil {
			t.Error("expected error for ciphertext shorter than nonce")
		}
	})

	t.Run("Tampered Ciphertext", func(t *testing.T) {
		ct, _ := enc.Encrypt("token")
		raw, _ := base64.StdEncoding.DecodeString(ct)
		raw[len(raw)-1] ^= 0xff
		if _, err := enc.Decrypt(base64.StdEncoding.EncodeToString(raw)); err == nil {
			t.Error("expected authentication failure on tampered ciphertext")
		}
	})

	t.Run("Wrong Key", func(t *testing.T) {
		other, _ := New([]byte("fedcba9876543210fedcba9876543210"))
		ct, _ := enc.Encrypt("token")
		if _, err := other.Decrypt(ct); err == nil {
			t.Error("expected decryption failure with a different key")
		}
	})
}
