package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/PolarWolf314/passvault/internal/configs"
	kerrors "github.com/PolarWolf314/passvault/internal/errors"
	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/atotto/clipboard"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// ErrReported is returned by commands that already explained the failure to
// the user. main exits with status 1 without printing it again.
var ErrReported = errors.New("error already reported")

var (
	// stdin is read by prompts and --password-stdin. Replaced in tests.
	stdin io.Reader = os.Stdin

	// writeClipboard is replaced in tests; CI machines rarely have a clipboard.
	writeClipboard = clipboard.WriteAll
)

func newInputReader() *bufio.Reader {
	return bufio.NewReader(stdin)
}

// vaultSettings returns the settings before config.toml overrides.
func vaultSettings() *configs.Settings {
	return configs.PassvaultSettings
}

// resolvedSettings returns the settings with config.toml overrides, falling
// back to the defaults when the config cannot be read.
func resolvedSettings() *configs.Settings {
	settings, err := workflows.ResolveSettings(vaultSettings())
	if err != nil {
		Logger.Warnf("Failed to load config, using default locations: %v", err)
		return vaultSettings()
	}
	return settings
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. The returned cleanup function must be deferred.
//
// spinner.FinalMSG does not need a trailing newline; cleanup adds one and
// prints it to stdout.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// openVault opens the vault and tells the user about a newly created key.
// When ok is false the failure has been reported and err should be returned
// from the command as is.
func openVault(ctx context.Context) (v *workflows.Vault, ok bool, err error) {
	Logger.Debugf("Opening vault")
	v, err = workflows.Open(ctx, workflows.OpenOptions{Settings: vaultSettings()})
	if err != nil {
		return nil, false, reportError(err)
	}
	Logger.Debugf("Opened vault at %s", v.DatabasePath())

	if v.KeyCreated {
		fmt.Println(ui.Info.Sprint("→") + " Created a new encryption key at " + ui.Path.Sprint(v.Settings.KeyFilePath))
		fmt.Println(ui.Info.Sprint("→") + " Back it up: without it your passwords cannot be recovered")
	}
	if v.OrphanedRecords > 0 {
		Logger.WarnfUser("%d stored %s encrypted with a previous key and cannot be read with the new one",
			v.OrphanedRecords, utils.Pluralize(v.OrphanedRecords, "password was", "passwords were"))
	}
	return v, true, nil
}

func closeVault(v *workflows.Vault) {
	if err := v.Close(); err != nil {
		Logger.Warnf("Failed to close vault: %v", err)
	}
}

// reportError explains err to the user and returns ErrReported. Errors
// without a dedicated explanation are returned unchanged.
func reportError(err error) error {
	var validationErr *workflows.ValidationError

	switch {
	case errors.Is(err, kerrors.ErrKeyCorrupted):
		Logger.Fatalf("%v\n%s Restore %s from a backup, or run %s to replace it. Passwords stored with the old key stay unreadable.",
			err, ui.Info.Sprint("→"), ui.Path.Sprint(resolvedSettings().KeyFilePath), ui.Code.Sprint("passvault key regenerate"))

	case errors.Is(err, kerrors.ErrKeyFileUnreadable):
		fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
		fmt.Println(ui.Info.Sprint("→") + " Check that " + ui.Path.Sprint(resolvedSettings().KeyFilePath) + " is a file you can read. passvault will not replace it.")

	case errors.Is(err, kerrors.ErrVaultLocked):
		fmt.Println(ui.Error.Sprint("✗") + " The vault is in use by another passvault process")
		fmt.Println(ui.Info.Sprint("→") + " Close it and try again")

	case errors.As(err, &validationErr):
		fmt.Println(ui.Error.Sprint("✗") + " All fields must be filled in. Empty: " + strings.Join(validationErr.Missing, ", "))
		fmt.Println(ui.Info.Sprint("→") + " Nothing was saved")

	case errors.Is(err, kerrors.ErrNothingToUpdate):
		fmt.Println(ui.Error.Sprint("✗") + " Nothing to update")
		fmt.Println(ui.Info.Sprint("→") + " Pass " + ui.Flag.Sprint("--service") + ", " + ui.Flag.Sprint("--login") + " or a new password")

	case errors.Is(err, kerrors.ErrRecordNotFound):
		fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passvault list") + " to see stored records")

	case errors.Is(err, kerrors.ErrKeyMismatch):
		Logger.WarnfUser("%v", err)
		fmt.Println(ui.Info.Sprint("→") + " Give it a new password with " + ui.Code.Sprint("passvault update <id> --password-stdin"))

	case errors.Is(err, kerrors.ErrNoCharacterClass), errors.Is(err, kerrors.ErrInvalidLength):
		fmt.Println(ui.Error.Sprint("✗") + " " + err.Error())

	default:
		Logger.Errorf("%v", err)
		return err
	}

	return ErrReported
}

// passwordFlags are the mutually exclusive ways of supplying a password.
type passwordFlags struct {
	value     string
	fromStdin bool
	generate  bool
}

func (p *passwordFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.value, "password", "", "the password (visible in shell history; prefer a prompt or --password-stdin)")
	cmd.Flags().BoolVar(&p.fromStdin, "password-stdin", false, "read the password from the first line of stdin")
	cmd.Flags().BoolVar(&p.generate, "generate", false, "generate the password with the saved generator settings")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin", "generate")
}

func (p *passwordFlags) reset() {
	p.value = ""
	p.fromStdin = false
	p.generate = false
}

// read returns the password chosen by the flags. Without any password flag
// it prompts when prompt is true and returns nil otherwise.
func (p *passwordFlags) read(cmd *cobra.Command, reader *bufio.Reader, prompt bool) (*string, error) {
	switch {
	case p.generate:
		res, err := workflows.GeneratePassword(cmd.Context(), workflows.GenerateOptions{Settings: vaultSettings(), NoSave: true})
		if err != nil {
			return nil, err
		}
		fmt.Printf("%s Generated a %d-character password\n", ui.Success.Sprint("✓"), len(res.Password))
		return &res.Password, nil

	case p.fromStdin:
		line, err := utils.ReadLine(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read password from stdin: %w", err)
		}
		return &line, nil

	case cmd.Flags().Changed("password"):
		Logger.Debugf("Password supplied with --password")
		value := p.value
		return &value, nil

	case prompt:
		password, err := promptPassword(reader)
		if err != nil {
			return nil, err
		}
		return &password, nil
	}

	return nil, nil
}

// promptPassword reads a password without echo from a terminal, or as a
// plain line when input is redirected.
func promptPassword(reader *bufio.Reader) (string, error) {
	if stdin == io.Reader(os.Stdin) && utils.IsTerminal() {
		return utils.ReadPassword("Password: ")
	}
	fmt.Print("Password: ")
	line, err := utils.ReadLine(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return line, nil
}

// recordLabel renders a record as "'service' / 'login' (#id)".
func recordLabel(id int64, service, login string) string {
	return ui.Highlight.Sprint(service) + " / " + ui.Highlight.Sprint(login) + " " + ui.Muted.Sprintf("#%d", id)
}
