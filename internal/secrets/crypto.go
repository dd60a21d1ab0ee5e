package secrets

import (
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

// Encrypt seals plaintext under key with NaCl secretbox. The random nonce is
// prepended to the returned ciphertext.
func Encrypt(plaintext string, key Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var k [KeySize]byte
	copy(k[:], key)

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &k), nil
}

// Decrypt opens a ciphertext produced by Encrypt.
//
// Returns ErrKeyCorrupted if key is not valid key material, and
// ErrKeyMismatch if the ciphertext does not authenticate under key.
func Decrypt(ciphertext []byte, key Key) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	if len(ciphertext) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: ciphertext is truncated", kerrors.ErrKeyMismatch)
	}

	var k [KeySize]byte
	copy(k[:], key)

	var nonce [nonceSize]byte
	copy(nonce[:], ciphertext[:nonceSize])

	plaintext, ok := secretbox.Open(nil, ciphertext[nonceSize:], &nonce, &k)
	if !ok {
		return "", kerrors.ErrKeyMismatch
	}
	return string(plaintext), nil
}

// Cipher encrypts and decrypts password values with a key fixed at
// construction. It is safe to share; the key is never modified.
type Cipher struct {
	key Key
}

// NewCipher validates key and returns a Cipher owning a private copy of it.
func NewCipher(key Key) (*Cipher, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	owned := make(Key, KeySize)
	copy(owned, key)
	return &Cipher{key: owned}, nil
}

func (c *Cipher) Encrypt(plaintext string) ([]byte, error) {
	return Encrypt(plaintext, c.key)
}

func (c *Cipher) Decrypt(ciphertext []byte) (string, error) {
	return Decrypt(ciphertext, c.key)
}

// Fingerprint returns the fingerprint of the cipher's key.
func (c *Cipher) Fingerprint() string {
	return c.key.Fingerprint()
}
