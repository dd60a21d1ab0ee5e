// Package errors provides typed error values for passvault.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Key errors: ErrKeyNotFound, ErrKeyFileUnreadable, ErrKeyCorrupted, ErrKeyMismatch
//   - Vault errors: ErrVaultLocked
//   - Validation errors: ErrValidation, ErrNothingToUpdate
//   - Store errors: ErrRecordNotFound
//   - Generator errors: ErrNoCharacterClass, ErrInvalidLength
//
// Only ErrKeyCorrupted is fatal. The CLI terminates after reporting it,
// because every further read or write would run against an unusable key.
// ErrKeyMismatch is scoped to a single record: the record stays stored but
// unreadable until the original key is restored or the record is replaced.
//
// # Usage
//
//	plaintext, err := cipher.Decrypt(record.Ciphertext)
//	if errors.Is(err, kerrors.ErrKeyMismatch) {
//	    // warn and keep going
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading key file %s: %w", path, errors.ErrKeyFileUnreadable)
package errors
