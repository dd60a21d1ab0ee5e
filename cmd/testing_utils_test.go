// Testing utilities shared by the command tests: an isolated vault per test,
// output capture and a helper running the real command tree.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/passvault/internal/configs"
)

// setupTestVault points passvault at fresh temporary directories and
// restores the global state when the test ends.
func setupTestVault(t *testing.T) *configs.Settings {
	t.Helper()

	originalSettings := configs.PassvaultSettings
	originalClipboard := writeClipboard

	dir := t.TempDir()
	configs.PassvaultSettings = configs.SettingsFor(filepath.Join(dir, "config"), filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		configs.PassvaultSettings = originalSettings
		writeClipboard = originalClipboard
		ResetGlobalState()
	})

	return configs.PassvaultSettings
}

// runCommand runs passvault with args and returns everything written to
// stdout and stderr. input is served to prompts and --password-stdin.
func runCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	ResetGlobalState()
	SetInput(strings.NewReader(input))
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	RootCmd.SetArgs(args)

	return captureOutput(func() error {
		return RootCmd.Execute()
	})
}

// mustRun is runCommand for steps that must succeed.
func mustRun(t *testing.T, input string, args ...string) string {
	t.Helper()
	output, err := runCommand(t, input, args...)
	if err != nil {
		t.Fatalf("passvault %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return output
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	stdoutChan := make(chan string, 1)
	stderrChan := make(chan string, 1)

	collect := func(r io.Reader, out chan<- string) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to read captured output: %s", err)
		}
		out <- buf.String()
	}
	go collect(stdoutReader, stdoutChan)
	go collect(stderrReader, stderrChan)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	return <-stdoutChan + <-stderrChan, err
}
