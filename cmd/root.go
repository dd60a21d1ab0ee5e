package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/PolarWolf314/passvault/internal/configs"
	logger "github.com/PolarWolf314/passvault/internal/logging"
	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "passvault",
		Short: "passvault - a local, encrypted password manager",
		Long: `passvault keeps your passwords in a local SQLite database. Every password is
encrypted with a key stored next to the database; the key is created on first use.

Back up the key file: without it your stored passwords cannot be recovered.

Run 'passvault help <command>' for more details on a specific command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.CommandPath(), verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			Logger.Infof("Starting greeting")

			fmt.Println(ui.Banner("passvault"))
			fmt.Println()

			if _, err := configs.EnsureConfig(vaultSettings()); err != nil {
				Logger.Warnf("Failed to write default config: %v", err)
			}

			v, ok, err := openVault(cmd.Context())
			if !ok {
				return err
			}
			defer closeVault(v)

			greeting, err := workflows.Greeting(cmd.Context(), v)
			if err != nil {
				return Logger.ErrorfAndReturn("failed to load logins: %v", err)
			}

			fmt.Println(greeting)
			fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passvault --help") + " to see available commands")
			return nil
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(updateCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(copyCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(keyCmd)
	RootCmd.AddCommand(configCmd)
}

// GetRootCmd returns the RootCmd for testing.
func GetRootCmd() *cobra.Command {
	return RootCmd
}

// ResetGlobalState resets all global variables to their default values for
// testing, including the changed state of every flag.
func ResetGlobalState() {
	verbose = false
	debug = false
	stdin = os.Stdin
	resetAddCommandState()
	resetListCommandState()
	resetUpdateCommandState()
	resetDeleteCommandState()
	resetGenerateCommandState()
	resetKeyCommandState()
	resetFlags(RootCmd)
}

// resetFlags restores every flag of c and its subcommands to its default so
// that one Execute does not leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			log.Fatalf("Failed to reset flag --%s: %s", f.Name, err)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)

	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// SetInput sets the reader used by prompts and --password-stdin for testing.
func SetInput(r io.Reader) {
	stdin = r
}

// SetClipboard replaces the clipboard writer for testing and returns a
// function restoring the previous one.
func SetClipboard(write func(string) error) (restore func()) {
	previous := writeClipboard
	writeClipboard = write
	return func() { writeClipboard = previous }
}
