// Package shared contains testing utilities shared between integration tests.
// They run the real passvault command tree against an isolated vault.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/passvault/cmd"
	"github.com/PolarWolf314/passvault/internal/configs"
)

// SetupTestVault points passvault at fresh temporary directories and
// restores the global state when the test ends.
func SetupTestVault(t *testing.T) *configs.Settings {
	t.Helper()

	originalSettings := configs.PassvaultSettings

	dir := t.TempDir()
	configs.PassvaultSettings = configs.SettingsFor(filepath.Join(dir, "config"), filepath.Join(dir, "data"))
	t.Setenv("NO_COLOR", "1")

	t.Cleanup(func() {
		configs.PassvaultSettings = originalSettings
		cmd.ResetGlobalState()
	})

	return configs.PassvaultSettings
}

// Clipboard records what passvault copies instead of touching the system
// clipboard.
type Clipboard struct {
	Contents string
	Writes   int
}

// StubClipboard routes passvault's clipboard writes to a Clipboard until the
// test ends.
func StubClipboard(t *testing.T) *Clipboard {
	t.Helper()

	clip := &Clipboard{}
	restore := cmd.SetClipboard(func(text string) error {
		clip.Contents = text
		clip.Writes++
		return nil
	})
	t.Cleanup(restore)

	return clip
}

// RunCommand runs passvault with args and returns its combined output.
// input is served to prompts and --password-stdin.
func RunCommand(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd.ResetGlobalState()
	cmd.SetInput(strings.NewReader(input))
	if args == nil {
		args = []string{}
	}

	root := cmd.GetRootCmd()
	root.SetArgs(args)

	return CaptureOutput(func() error {
		return root.Execute()
	})
}

// MustRun is RunCommand for steps that must succeed.
func MustRun(t *testing.T, input string, args ...string) string {
	t.Helper()
	output, err := RunCommand(t, input, args...)
	if err != nil {
		t.Fatalf("passvault %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return output
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
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
