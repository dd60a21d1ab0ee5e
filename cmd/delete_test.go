package cmd

import (
	"errors"
	"strings"
	"testing"
)

func TestDelete_Confirmed(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "github", "octocat", "p1")
	addRecord(t, "mail", "me", "p2")

	output := mustRun(t, "y\n", "delete", "1")

	if !strings.Contains(output, "'github' / 'octocat' (#1)") {
		t.Errorf("Expected record to be listed before confirmation, got: %s", output)
	}
	if !strings.Contains(output, "Deleted 1 record") {
		t.Errorf("Expected success message, got: %s", output)
	}

	listed := mustRun(t, "", "list")
	if strings.Contains(listed, "github") || !strings.Contains(listed, "mail") {
		t.Errorf("Expected only mail to remain, got: %s", listed)
	}
}

func TestDelete_Aborted(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "github", "octocat", "p1")

	output := mustRun(t, "n\n", "delete", "1")
	if !strings.Contains(output, "Aborted.") {
		t.Errorf("Expected abort message, got: %s", output)
	}

	listed := mustRun(t, "", "list")
	if !strings.Contains(listed, "github") {
		t.Errorf("Record must survive an aborted delete, got: %s", listed)
	}
}

func TestDelete_MultipleWithYes(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "a", "a", "p")
	addRecord(t, "b", "b", "p")
	addRecord(t, "c", "c", "p")

	output := mustRun(t, "", "delete", "1,3", "--yes")
	if !strings.Contains(output, "Deleted 2 records") {
		t.Errorf("Expected two deletions, got: %s", output)
	}
	if strings.Contains(output, "Do you want to continue?") {
		t.Errorf("--yes must skip the prompt, got: %s", output)
	}
}

func TestDelete_UnknownIDDeletesNothing(t *testing.T) {
	setupTestVault(t)
	addRecord(t, "github", "octocat", "p1")

	output, err := runCommand(t, "", "delete", "1", "99", "--yes")
	if !errors.Is(err, ErrReported) {
		t.Fatalf("Expected ErrReported, got: %v", err)
	}
	if !strings.Contains(output, "record not found") {
		t.Errorf("Expected not found message, got: %s", output)
	}

	listed := mustRun(t, "", "list")
	if !strings.Contains(listed, "github") {
		t.Errorf("No record may be deleted when an id is unknown, got: %s", listed)
	}
}
