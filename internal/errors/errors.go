package errors

import "errors"

// Key errors indicate problems with the encryption key or its key file.
var (
	// ErrKeyNotFound indicates the key file does not exist yet.
	ErrKeyNotFound = errors.New("encryption key not found")

	// ErrKeyFileUnreadable indicates the key file exists but could not be read.
	ErrKeyFileUnreadable = errors.New("key file exists but cannot be read")

	// ErrKeyCorrupted indicates the key material is structurally invalid.
	// No record can be encrypted or decrypted with it.
	ErrKeyCorrupted = errors.New("encryption key is corrupted")

	// ErrKeyMismatch indicates a ciphertext did not authenticate under the active key,
	// usually because the key file was replaced after the record was written.
	ErrKeyMismatch = errors.New("record was encrypted with a different key")

	// ErrKeyFileExists indicates a key file is already present where a new one was to be created.
	ErrKeyFileExists = errors.New("key file already exists")
)

// Vault errors indicate problems opening or holding the vault.
var (
	// ErrVaultLocked indicates another process currently has the vault open.
	ErrVaultLocked = errors.New("vault is in use by another process")
)

// Validation errors indicate a credential was rejected before persistence.
var (
	// ErrValidation indicates one or more required credential fields are empty.
	ErrValidation = errors.New("all fields must be filled in")

	// ErrNothingToUpdate indicates an update was requested without any changed field.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Store errors indicate issues with the record store.
var (
	// ErrRecordNotFound indicates no record exists with the requested id.
	ErrRecordNotFound = errors.New("record not found")
)

// Generator errors indicate invalid password generator settings.
var (
	// ErrNoCharacterClass indicates no character class was selected.
	ErrNoCharacterClass = errors.New("select at least one character class")

	// ErrInvalidLength indicates the requested password length cannot be satisfied.
	ErrInvalidLength = errors.New("invalid password length")
)
