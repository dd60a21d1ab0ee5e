package lifecycle_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/PolarWolf314/passvault/cmd"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/PolarWolf314/passvault/test/integration/shared"
)

// TestVaultLifecycle walks through a vault's life: first run, storing
// credentials, losing the key and recovering with a new one.
func TestVaultLifecycle(t *testing.T) {
	settings := shared.SetupTestVault(t)

	output := shared.MustRun(t, "hunter2\n", "add", "-s", "github", "-l", "octocat", "--password-stdin")
	if !strings.Contains(output, "Created a new encryption key") {
		t.Fatalf("First use should create the key, got: %s", output)
	}
	shared.MustRun(t, "s3cret\n", "add", "-s", "mail", "-l", "me@example.com", "--password-stdin")

	output = shared.MustRun(t, "", "list", "--show")
	for _, want := range []string{"github", "hunter2", "mail", "s3cret"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q after adding, got: %s", want, output)
		}
	}

	// Losing the key file makes the next run create a new key. Existing
	// records stay in place but cannot be read.
	if err := os.Remove(settings.KeyFilePath); err != nil {
		t.Fatalf("Failed to remove key file: %v", err)
	}

	output = shared.MustRun(t, "", "list")
	if !strings.Contains(output, "2 stored passwords were encrypted with a previous key") {
		t.Errorf("Expected orphaned records warning, got: %s", output)
	}
	if strings.Count(output, "<unreadable>") != 2 {
		t.Errorf("Expected both records to be unreadable, got: %s", output)
	}

	// Giving a record a new password makes it readable again.
	shared.MustRun(t, "hunter3\n", "update", "1", "--password-stdin")
	output = shared.MustRun(t, "", "list", "--show")
	if !strings.Contains(output, "hunter3") || strings.Count(output, "<unreadable>") != 1 {
		t.Errorf("Expected record 1 to be repaired, got: %s", output)
	}

	clip := shared.StubClipboard(t)
	output = shared.MustRun(t, "", "copy", "1", "--verbose")
	if clip.Contents != "hunter3" || clip.Writes != 1 {
		t.Errorf("Expected the repaired password on the clipboard, got %q after %d writes", clip.Contents, clip.Writes)
	}
	if strings.Contains(output, "hunter3") {
		t.Errorf("copy must not print the password, got: %s", output)
	}
	if !strings.Contains(output, "[info]") {
		t.Errorf("Expected info log lines with --verbose, got: %s", output)
	}

	// Record 2 is still encrypted with the lost key.
	output, err := shared.RunCommand(t, "", "copy", "2")
	if !errors.Is(err, cmd.ErrReported) {
		t.Fatalf("Expected ErrReported copying an unreadable record, got: %v", err)
	}
	if clip.Writes != 1 {
		t.Errorf("Clipboard must not be written for an unreadable record, got: %q", clip.Contents)
	}
	if !strings.Contains(output, "different key") {
		t.Errorf("Expected key mismatch warning, got: %s", output)
	}

	shared.MustRun(t, "", "delete", "2", "--yes")
	output = shared.MustRun(t, "", "list")
	if strings.Contains(output, "unreadable") || strings.Contains(output, "mail") {
		t.Errorf("Expected only the repaired record to remain, got: %s", output)
	}
}

// TestVaultInUse checks that a second process cannot open the vault.
func TestVaultInUse(t *testing.T) {
	settings := shared.SetupTestVault(t)

	v, err := workflows.Open(context.Background(), workflows.OpenOptions{Settings: settings})
	if err != nil {
		t.Fatalf("Failed to open vault: %v", err)
	}

	output, err := shared.RunCommand(t, "", "list")
	if !errors.Is(err, cmd.ErrReported) {
		t.Fatalf("Expected ErrReported, got: %v", err)
	}
	if !strings.Contains(output, "in use by another passvault process") {
		t.Errorf("Expected lock message, got: %s", output)
	}

	if err := v.Close(); err != nil {
		t.Fatalf("Failed to close vault: %v", err)
	}
	shared.MustRun(t, "", "list")
}
