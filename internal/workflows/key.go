package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/PolarWolf314/passvault/internal/configs"
	"github.com/PolarWolf314/passvault/internal/secrets"
	"github.com/PolarWolf314/passvault/internal/store"
)

// KeyOptions configures the key workflows.
type KeyOptions struct {
	Settings *configs.Settings
}

// KeyStatus describes the key file.
type KeyStatus struct {
	Path string

	// Exists is true if anything is present at Path.
	Exists bool

	// Fingerprint is set when the key file holds a valid key.
	Fingerprint string

	// Err explains why the key could not be loaded, if it could not.
	Err error

	// Records is the number of records in the vault database.
	Records int
}

// ShowKey reports the state of the key file without creating or changing anything.
func ShowKey(ctx context.Context, opts KeyOptions) (*KeyStatus, error) {
	settings, err := ResolveSettings(opts.Settings)
	if err != nil {
		return nil, err
	}

	km := secrets.NewKeyManager(settings.KeyFilePath)
	status := &KeyStatus{Path: km.Path(), Exists: km.Exists()}

	key, err := km.Load()
	if err != nil {
		status.Err = err
	} else {
		status.Fingerprint = key.Fingerprint()
	}

	if status.Records, err = countRecords(ctx, settings.DatabasePath); err != nil {
		return nil, err
	}
	return status, nil
}

// RegenerateKey replaces the key file with a new key while holding the vault
// lock. Every existing record becomes unreadable; the caller is responsible
// for obtaining the user's consent first.
//
// The returned status is non-nil whenever the key file was replaced, even if
// counting records or releasing the lock failed afterwards.
func RegenerateKey(ctx context.Context, opts KeyOptions) (*KeyStatus, error) {
	settings, err := ResolveSettings(opts.Settings)
	if err != nil {
		return nil, err
	}

	lock, err := acquireLock(settings.LockPath)
	if err != nil {
		return nil, err
	}

	status, err := regenerateLocked(ctx, settings)
	if unlockErr := lock.Unlock(); unlockErr != nil {
		err = errors.Join(err, fmt.Errorf("release vault lock: %w", unlockErr))
	}
	return status, err
}

// regenerateLocked writes the new key. A non-nil status means the key file
// was replaced, even when an error is also returned.
func regenerateLocked(ctx context.Context, settings *configs.Settings) (*KeyStatus, error) {
	km := secrets.NewKeyManager(settings.KeyFilePath)
	key, err := km.Regenerate()
	if err != nil {
		return nil, err
	}

	status := &KeyStatus{Path: km.Path(), Exists: true, Fingerprint: key.Fingerprint()}
	if status.Records, err = countRecords(ctx, settings.DatabasePath); err != nil {
		return status, err
	}
	return status, nil
}

// countRecords returns 0 without creating the database when it does not exist yet.
func countRecords(ctx context.Context, path string) (int, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return 0, nil
	}

	db, err := store.Open(path)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	records, err := store.NewRecordRepo(db).GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
