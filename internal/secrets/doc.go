// Package secrets owns the vault's encryption key and the cipher that
// protects password values.
//
// # Key Management
//
// A single 32-byte symmetric key is stored in a key file as URL-safe base64.
// KeyManager.LoadOrCreateKey reads it at startup and generates a new one on
// first run. The key is never rotated automatically:
//
//   - Missing key file: a key is generated and written with 0600 permissions
//   - Unreadable key file: ErrKeyFileUnreadable, nothing is regenerated
//   - Wrong length or encoding: ErrKeyCorrupted
//
// Replacing a damaged key file is an explicit operation (Regenerate) that
// the CLI only performs after the user confirms it.
//
// # Encryption
//
// Passwords are sealed with NaCl secretbox (XSalsa20-Poly1305). A random
// 24-byte nonce is prepended to each ciphertext, so encrypting the same
// password twice produces different output.
//
// Decryption distinguishes exactly two failures:
//
//   - ErrKeyMismatch: the ciphertext does not authenticate under the active
//     key. Only that record is affected.
//   - ErrKeyCorrupted: the key itself is unusable. Every record is affected.
//
// Cipher wraps a validated copy of the key so callers never pass raw key
// material around after startup.
package secrets
