package secrets

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/natefinch/atomic"
)

// KeySize is the length in bytes of the symmetric key used by secretbox.
const KeySize = 32

// Key is raw symmetric key material. A Key loaded from disk or generated
// here is always KeySize bytes; any other length is treated as corrupted.
type Key []byte

// GenerateKey creates new random key material from crypto/rand.
func GenerateKey() (Key, error) {
	key := make(Key, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate symmetric key: %w", err)
	}
	return key, nil
}

// ParseKey decodes key file contents. Surrounding whitespace is ignored.
func ParseKey(data []byte) (Key, error) {
	encoded := bytes.TrimSpace(data)
	key := make([]byte, base64.URLEncoding.DecodedLen(len(encoded)))
	n, err := base64.URLEncoding.Decode(key, encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: key file is not valid base64: %v", kerrors.ErrKeyCorrupted, err)
	}
	parsed := Key(key[:n])
	if err := parsed.Validate(); err != nil {
		return nil, err
	}
	return parsed, nil
}

// Validate reports ErrKeyCorrupted if the key has the wrong length.
func (k Key) Validate() error {
	if len(k) != KeySize {
		return fmt.Errorf("%w: expected %d bytes, got %d bytes", kerrors.ErrKeyCorrupted, KeySize, len(k))
	}
	return nil
}

// Encode returns the key file representation of the key.
func (k Key) Encode() []byte {
	out := make([]byte, base64.URLEncoding.EncodedLen(len(k)))
	base64.URLEncoding.Encode(out, k)
	return append(out, '\n')
}

// Equal compares two keys in constant time.
func (k Key) Equal(other Key) bool {
	return len(k) == len(other) && subtle.ConstantTimeCompare(k, other) == 1
}

// Fingerprint identifies a key without revealing it.
func (k Key) Fingerprint() string {
	sum := sha256.Sum256(k)
	return hex.EncodeToString(sum[:8])
}

// KeyManager owns the key file at a fixed path.
type KeyManager struct {
	path string
}

func NewKeyManager(path string) *KeyManager {
	return &KeyManager{path: path}
}

// Path returns the location of the key file.
func (m *KeyManager) Path() string {
	return m.path
}

// Exists reports whether something is present at the key file path. A
// dangling symlink counts as present.
func (m *KeyManager) Exists() bool {
	_, err := os.Lstat(m.path)
	return err == nil
}

// Load reads and decodes the key file.
//
// Returns ErrKeyNotFound if there is no key file, ErrKeyFileUnreadable if it
// exists but cannot be read, and ErrKeyCorrupted if its contents are not a
// valid key.
func (m *KeyManager) Load() (Key, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if m.Exists() {
				return nil, fmt.Errorf("%w: %s is a symlink to a missing file", kerrors.ErrKeyFileUnreadable, m.path)
			}
			return nil, fmt.Errorf("%w at %s", kerrors.ErrKeyNotFound, m.path)
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyFileUnreadable, err)
	}

	key, err := ParseKey(data)
	if err != nil {
		return nil, fmt.Errorf("loading key from %s: %w", m.path, err)
	}
	return key, nil
}

// LoadOrCreateKey returns the persisted key, generating and saving a new one
// only when no key file exists. An unreadable or corrupted key file is never
// replaced here; see Regenerate.
func (m *KeyManager) LoadOrCreateKey() (Key, error) {
	key, err := m.Load()
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, kerrors.ErrKeyNotFound) {
		return nil, err
	}
	return m.Create()
}

// Create generates a key and writes it to a key file that must not exist yet.
func (m *KeyManager) Create() (Key, error) {
	if m.Exists() {
		return nil, fmt.Errorf("%w at %s", kerrors.ErrKeyFileExists, m.path)
	}
	return m.writeNewKey()
}

// Regenerate replaces the key file with fresh key material, whatever its
// current state. Every ciphertext written under the previous key becomes
// unreadable, so callers must have the user's explicit consent.
func (m *KeyManager) Regenerate() (Key, error) {
	return m.writeNewKey()
}

func (m *KeyManager) writeNewKey() (Key, error) {
	key, err := GenerateKey()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory for key file at %s: %w", dir, err)
	}

	if err := atomic.WriteFile(m.path, bytes.NewReader(key.Encode())); err != nil {
		return nil, fmt.Errorf("failed to save key file at %s: %w", m.path, err)
	}
	if err := os.Chmod(m.path, 0600); err != nil {
		return nil, fmt.Errorf("failed to restrict key file permissions: %w", err)
	}

	return key, nil
}
