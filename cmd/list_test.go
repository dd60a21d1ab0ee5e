package cmd

import (
	"os"
	"strings"
	"testing"

	logger "github.com/PolarWolf314/passvault/internal/logging"
	"github.com/PolarWolf314/passvault/internal/secrets"
)

func addRecord(t *testing.T, service, login, password string) {
	t.Helper()
	mustRun(t, password+"\n", "add", "-s", service, "-l", login, "--password-stdin")
}

func TestList_Empty(t *testing.T) {
	setupTestVault(t)

	output := mustRun(t, "", "list")

	if !strings.Contains(output, "No passwords stored yet") {
		t.Errorf("Expected empty vault message, got: %s", output)
	}
}

func TestList_MasksPasswordsByDefault(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "github", "octocat", "hunter2")

	output := mustRun(t, "", "list")

	if strings.Contains(output, "hunter2") {
		t.Errorf("Password must be masked without --show, got: %s", output)
	}
	for _, want := range []string{"SERVICE", "github", "octocat", "••••••••"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in list output, got: %s", want, output)
		}
	}
}

func TestList_Query(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "GitHub", "octocat", "p1")
	addRecord(t, "mail", "me@example.com", "p2")

	output := mustRun(t, "", "list", "HUB")
	if !strings.Contains(output, "GitHub") || strings.Contains(output, "mail") {
		t.Errorf("Expected only GitHub to match, got: %s", output)
	}

	output = mustRun(t, "", "list", "nothing-matches")
	if !strings.Contains(output, "No passwords match 'nothing-matches'") {
		t.Errorf("Expected no-match message, got: %s", output)
	}
}

func TestList_RecordsFromAnotherKeyAreUnreadable(t *testing.T) {
	settings := setupTestVault(t)
	addRecord(t, "github", "octocat", "hunter2")

	key, err := secrets.GenerateKey()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	if err := os.WriteFile(settings.KeyFilePath, key.Encode(), 0600); err != nil {
		t.Fatalf("Failed to replace key file: %v", err)
	}
	addRecord(t, "mail", "me", "s3cret")

	output := mustRun(t, "", "list", "--show")

	if !strings.Contains(output, "<unreadable>") {
		t.Errorf("Expected unreadable marker, got: %s", output)
	}
	if !strings.Contains(output, "s3cret") {
		t.Errorf("Readable records must still be listed, got: %s", output)
	}
	if strings.Contains(output, "hunter2") {
		t.Errorf("Record from the old key cannot be decrypted, got: %s", output)
	}
	if !strings.Contains(output, "1 password was encrypted with a different key") {
		t.Errorf("Expected mismatch warning, got: %s", output)
	}
}

func TestList_CorruptedKeyIsFatal(t *testing.T) {
	settings := setupTestVault(t)
	addRecord(t, "github", "octocat", "hunter2")

	if err := os.WriteFile(settings.KeyFilePath, []byte("not a key\n"), 0600); err != nil {
		t.Fatalf("Failed to corrupt key file: %v", err)
	}

	code := -1
	restore := logger.SetExitFunc(func(c int) { code = c })
	defer restore()

	output, err := runCommand(t, "", "list")

	if err == nil {
		t.Fatal("Expected list to fail with a corrupted key")
	}
	if code != 1 {
		t.Errorf("Expected exit code 1, got %d", code)
	}
	if !strings.Contains(output, "encryption key is corrupted") {
		t.Errorf("Expected corrupted key message, got: %s", output)
	}
	if !strings.Contains(output, "passvault key regenerate") {
		t.Errorf("Expected recovery hint, got: %s", output)
	}

	data, err := os.ReadFile(settings.KeyFilePath)
	if err != nil || string(data) != "not a key\n" {
		t.Errorf("Corrupted key file must be left untouched, got %q, %v", data, err)
	}
}
