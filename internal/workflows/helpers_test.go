package workflows

import (
	"context"
	"testing"

	"github.com/PolarWolf314/passvault/internal/configs"
	"github.com/stretchr/testify/require"
)

// testSettings returns settings rooted in a fresh temporary directory.
func testSettings(t *testing.T) *configs.Settings {
	t.Helper()
	dir := t.TempDir()
	return configs.SettingsFor(dir, dir)
}

// openTestVault opens a vault and closes it when the test ends.
func openTestVault(t *testing.T, settings *configs.Settings) *Vault {
	t.Helper()
	v, err := Open(context.Background(), OpenOptions{Settings: settings})
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
