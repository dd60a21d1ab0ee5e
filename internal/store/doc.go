// Package store persists credential records in a local SQLite database.
//
// The store never sees plaintext passwords: the password column holds the
// opaque ciphertext produced by the secrets package. Schema changes are
// shipped as embedded golang-migrate migrations and applied on Open.
package store
