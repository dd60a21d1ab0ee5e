// Package workflows provides the operations behind each passvault command.
//
// Workflows coordinate the key manager, the cipher, the record store and
// the configuration to implement complete user-facing features. They are
// independent of CLI concerns like flag parsing, spinners and output
// formatting.
//
// # Vault Lifecycle
//
// Open acquires an exclusive lock on the vault, loads the key (creating it
// on first run), builds the cipher and opens the record store. The returned
// Vault is passed explicitly to every record workflow and must be closed.
//
// # Available Workflows
//
//   - Add: Validates, encrypts and stores a new credential
//   - Update: Changes service, login and/or password of a record
//   - Delete: Removes one or more records
//   - List: Decrypts and filters records
//   - Get: Decrypts a single record
//   - Greeting: Builds the startup greeting
//   - GeneratePassword: Generates a password and remembers the settings
//   - ShowKey, RegenerateKey: Inspect or explicitly replace the key file
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.List(ctx, vault, opts)
//	if errors.Is(err, kerrors.ErrKeyCorrupted) {
//	    // fatal: report and exit
//	}
//
// Per-record key mismatches are not errors for List; they are reported on
// each Entry so the remaining records stay usable.
package workflows
