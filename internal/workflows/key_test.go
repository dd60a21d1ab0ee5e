package workflows

import (
	"context"
	"os"
	"testing"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/secrets"
	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowKey_Missing(t *testing.T) {
	settings := testSettings(t)

	status, err := ShowKey(context.Background(), KeyOptions{Settings: settings})
	require.NoError(t, err)
	assert.False(t, status.Exists)
	assert.ErrorIs(t, status.Err, kerrors.ErrKeyNotFound)
	assert.Zero(t, status.Records)

	_, err = os.Stat(settings.KeyFilePath)
	assert.True(t, os.IsNotExist(err), "ShowKey must not create a key")
	_, err = os.Stat(settings.DatabasePath)
	assert.True(t, os.IsNotExist(err), "ShowKey must not create a database")
}

func TestShowKey_Valid(t *testing.T) {
	settings := testSettings(t)
	ctx := context.Background()

	v, err := Open(ctx, OpenOptions{Settings: settings})
	require.NoError(t, err)
	_, err = Add(ctx, v, AddOptions{Service: "github", Login: "octocat", Password: "hunter2"})
	require.NoError(t, err)
	fingerprint := v.Cipher.Fingerprint()
	require.NoError(t, v.Close())

	status, err := ShowKey(ctx, KeyOptions{Settings: settings})
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.NoError(t, status.Err)
	assert.Equal(t, fingerprint, status.Fingerprint)
	assert.Equal(t, 1, status.Records)
}

func TestShowKey_Corrupted(t *testing.T) {
	settings := testSettings(t)
	require.NoError(t, os.WriteFile(settings.KeyFilePath, []byte{1, 2, 3}, 0600))

	status, err := ShowKey(context.Background(), KeyOptions{Settings: settings})
	require.NoError(t, err)
	assert.True(t, status.Exists)
	assert.ErrorIs(t, status.Err, kerrors.ErrKeyCorrupted)
	assert.Empty(t, status.Fingerprint)
}

func TestRegenerateKey_RepairsCorruptedKey(t *testing.T) {
	settings := testSettings(t)
	require.NoError(t, os.WriteFile(settings.KeyFilePath, []byte{1, 2, 3}, 0600))

	status, err := RegenerateKey(context.Background(), KeyOptions{Settings: settings})
	require.NoError(t, err)
	assert.NotEmpty(t, status.Fingerprint)

	v := openTestVault(t, settings)
	assert.False(t, v.KeyCreated)
	assert.Equal(t, status.Fingerprint, v.Cipher.Fingerprint())
}

func TestRegenerateKey_RefusedWhileVaultOpen(t *testing.T) {
	settings := testSettings(t)
	openTestVault(t, settings)

	_, err := RegenerateKey(context.Background(), KeyOptions{Settings: settings})
	assert.ErrorIs(t, err, kerrors.ErrVaultLocked)
}

func TestRegenerateKey_ReleasesLock(t *testing.T) {
	settings := testSettings(t)
	ctx := context.Background()

	_, err := RegenerateKey(ctx, KeyOptions{Settings: settings})
	require.NoError(t, err)

	lock := flock.New(settings.LockPath)
	locked, err := lock.TryLock()
	require.NoError(t, err)
	assert.True(t, locked, "vault lock must be released after regenerating")
	require.NoError(t, lock.Unlock())
}

func TestRegenerateKey_ReportsStatusWhenCountingFails(t *testing.T) {
	settings := testSettings(t)
	// A directory where the database belongs cannot be opened.
	require.NoError(t, os.MkdirAll(settings.DatabasePath, 0700))

	status, err := RegenerateKey(context.Background(), KeyOptions{Settings: settings})
	require.Error(t, err)
	require.NotNil(t, status, "the key file was replaced")
	assert.NotEmpty(t, status.Fingerprint)

	_, err = secrets.NewKeyManager(settings.KeyFilePath).Load()
	assert.NoError(t, err)

	lock := flock.New(settings.LockPath)
	locked, err := lock.TryLock()
	require.NoError(t, err)
	assert.True(t, locked)
	require.NoError(t, lock.Unlock())
}
