package workflows

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/passvault/internal/configs"
	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/secrets"
	"github.com/PolarWolf314/passvault/internal/store"
	"github.com/gofrs/flock"
)

// RecordStore is the persistence the workflows need. It only ever handles
// ciphertext.
type RecordStore interface {
	GetAll(ctx context.Context) ([]store.Record, error)
	Get(ctx context.Context, id int64) (store.Record, error)
	Insert(ctx context.Context, service, login string, ciphertext []byte) (int64, error)
	Update(ctx context.Context, id int64, service, login string, ciphertext []byte) error
	Delete(ctx context.Context, id int64) error
	Logins(ctx context.Context) ([]string, error)
}

// Vault is an open password vault: the record store plus the cipher built
// from the active key.
type Vault struct {
	Store  RecordStore
	Cipher *secrets.Cipher

	// Settings are the resolved locations the vault was opened from. Nil for
	// vaults assembled with NewVault.
	Settings *configs.Settings

	// KeyCreated is true when Open generated the key because none existed.
	KeyCreated bool

	// OrphanedRecords counts records that were already stored when a new key
	// had to be generated. They cannot be decrypted with the new key.
	OrphanedRecords int

	db   *store.DB
	lock *flock.Flock
}

// NewVault assembles a vault from an existing store and cipher.
func NewVault(st RecordStore, cipher *secrets.Cipher) *Vault {
	return &Vault{Store: st, Cipher: cipher}
}

// OpenOptions configures Open.
type OpenOptions struct {
	// Settings locates the key file, database and lock. Defaults to
	// configs.PassvaultSettings.
	Settings *configs.Settings
}

// Open acquires the vault lock, loads or creates the key and opens the record store.
//
// Returns ErrVaultLocked if another process has the vault open,
// ErrKeyFileUnreadable if the key file cannot be read and ErrKeyCorrupted if
// the key file does not contain a valid key.
func Open(ctx context.Context, opts OpenOptions) (*Vault, error) {
	settings, err := ResolveSettings(opts.Settings)
	if err != nil {
		return nil, err
	}

	lock, err := acquireLock(settings.LockPath)
	if err != nil {
		return nil, err
	}

	v, err := openLocked(ctx, settings)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	v.lock = lock
	return v, nil
}

func openLocked(ctx context.Context, settings *configs.Settings) (*Vault, error) {
	km := secrets.NewKeyManager(settings.KeyFilePath)
	created := !km.Exists()

	key, err := km.LoadOrCreateKey()
	if err != nil {
		return nil, err
	}

	cipher, err := secrets.NewCipher(key)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(settings.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening record store: %w", err)
	}

	v := NewVault(store.NewRecordRepo(db), cipher)
	v.db = db
	v.Settings = settings
	v.KeyCreated = created

	if created {
		records, err := v.Store.GetAll(ctx)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		v.OrphanedRecords = len(records)
	}

	return v, nil
}

// DatabasePath returns the location of the open database file, or "" for
// vaults assembled with NewVault.
func (v *Vault) DatabasePath() string {
	if v.db == nil {
		return ""
	}
	return v.db.Path()
}

// Close closes the record store and releases the vault lock.
func (v *Vault) Close() error {
	var errs []error
	if v.db != nil {
		errs = append(errs, v.db.Close())
	}
	if v.lock != nil {
		if err := v.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("release vault lock: %w", err))
		}
	}
	return errors.Join(errs...)
}

// acquireLock takes the exclusive vault lock without blocking.
func acquireLock(path string) (*flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory for lock file: %w", err)
	}

	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock vault at %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w (lock file %s)", kerrors.ErrVaultLocked, path)
	}
	return lock, nil
}

// ResolveSettings applies config.toml overrides to the given or default settings.
func ResolveSettings(settings *configs.Settings) (*configs.Settings, error) {
	if settings == nil {
		settings = configs.PassvaultSettings
	}
	cfg, err := configs.LoadConfig(settings)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return settings.WithOverrides(cfg), nil
}
