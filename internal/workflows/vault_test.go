package workflows

import (
	"context"
	"os"
	"testing"

	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FirstRunCreatesKey(t *testing.T) {
	settings := testSettings(t)

	v := openTestVault(t, settings)
	assert.True(t, v.KeyCreated)
	assert.Zero(t, v.OrphanedRecords)

	_, err := os.Stat(settings.KeyFilePath)
	assert.NoError(t, err)
	_, err = os.Stat(settings.DatabasePath)
	assert.NoError(t, err)
	assert.Equal(t, settings.DatabasePath, v.DatabasePath())
}

func TestOpen_ReusesExistingKey(t *testing.T) {
	settings := testSettings(t)
	ctx := context.Background()

	v, err := Open(ctx, OpenOptions{Settings: settings})
	require.NoError(t, err)
	added, err := Add(ctx, v, AddOptions{Service: "github", Login: "octocat", Password: "hunter2"})
	require.NoError(t, err)
	require.NoError(t, v.Close())

	v = openTestVault(t, settings)
	assert.False(t, v.KeyCreated)

	entry, err := Get(ctx, v, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", entry.Password)
}

func TestOpen_LockedByAnotherHolder(t *testing.T) {
	settings := testSettings(t)
	openTestVault(t, settings)

	_, err := Open(context.Background(), OpenOptions{Settings: settings})
	assert.ErrorIs(t, err, kerrors.ErrVaultLocked)
}

func TestOpen_CloseReleasesLock(t *testing.T) {
	settings := testSettings(t)

	v, err := Open(context.Background(), OpenOptions{Settings: settings})
	require.NoError(t, err)
	require.NoError(t, v.Close())

	openTestVault(t, settings)
}

func TestOpen_CorruptedKeyIsFatal(t *testing.T) {
	settings := testSettings(t)
	require.NoError(t, os.WriteFile(settings.KeyFilePath, []byte("xyz"), 0600))

	_, err := Open(context.Background(), OpenOptions{Settings: settings})
	assert.ErrorIs(t, err, kerrors.ErrKeyCorrupted)

	// The lock must be released after a failed open.
	require.NoError(t, os.WriteFile(settings.KeyFilePath, mustEncodedKey(t), 0600))
	openTestVault(t, settings)
}

func TestOpen_UnreadableKeyIsNotReplaced(t *testing.T) {
	settings := testSettings(t)
	require.NoError(t, os.Mkdir(settings.KeyFilePath, 0700))

	_, err := Open(context.Background(), OpenOptions{Settings: settings})
	assert.ErrorIs(t, err, kerrors.ErrKeyFileUnreadable)

	info, err := os.Stat(settings.KeyFilePath)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOpen_ReportsOrphanedRecordsAfterKeyLoss(t *testing.T) {
	settings := testSettings(t)
	ctx := context.Background()

	v, err := Open(ctx, OpenOptions{Settings: settings})
	require.NoError(t, err)
	_, err = Add(ctx, v, AddOptions{Service: "github", Login: "octocat", Password: "hunter2"})
	require.NoError(t, err)
	require.NoError(t, v.Close())

	require.NoError(t, os.Remove(settings.KeyFilePath))

	v = openTestVault(t, settings)
	assert.True(t, v.KeyCreated)
	assert.Equal(t, 1, v.OrphanedRecords)
}

func mustEncodedKey(t *testing.T) []byte {
	t.Helper()
	key, err := secrets.GenerateKey()
	require.NoError(t, err)
	return key.Encode()
}
