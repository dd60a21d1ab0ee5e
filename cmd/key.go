package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var keyRegenerateForce bool

func init() {
	keyRegenerateCmd.Flags().BoolVarP(&keyRegenerateForce, "force", "f", false, "skip confirmation prompt")

	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyRegenerateCmd)
}

func resetKeyCommandState() {
	keyRegenerateForce = false
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Inspect or replace the encryption key",
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the key file location and fingerprint",
	Long: `Shows where the encryption key is stored, whether it can be loaded and a
fingerprint identifying it. The key itself is never printed. Nothing is
created or changed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key show command")

		status, err := workflows.ShowKey(cmd.Context(), workflows.KeyOptions{Settings: vaultSettings()})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to inspect key: %v", err)
		}

		fmt.Println("Key file:    " + ui.Path.Sprint(status.Path))
		switch {
		case status.Err == nil:
			fmt.Println("Status:      " + ui.Success.Sprint("✓") + " valid")
			fmt.Println("Fingerprint: " + ui.Highlight.Sprint(status.Fingerprint))
		case !status.Exists:
			fmt.Println("Status:      " + ui.Warning.Sprint("not created yet"))
		default:
			fmt.Println("Status:      " + ui.Error.Sprint("✗") + " " + status.Err.Error())
		}
		fmt.Printf("Records:     %d\n", status.Records)
		return nil
	},
}

var keyRegenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Replace the encryption key with a new one",
	Long: `Replaces the key file with a freshly generated key.

Passwords stored with the previous key cannot be decrypted afterwards. Use
this only when the key file is corrupted or lost and cannot be restored from
a backup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting key regenerate command")

		if !keyRegenerateForce {
			status, err := workflows.ShowKey(cmd.Context(), workflows.KeyOptions{Settings: vaultSettings()})
			if err != nil {
				return Logger.ErrorfAndReturn("failed to inspect key: %v", err)
			}

			fmt.Println(ui.Warning.Sprint("⚠") + " This replaces " + ui.Path.Sprint(status.Path) + " with a new key.")
			if status.Records > 0 {
				fmt.Printf("  %d stored %s will become unreadable.\n", status.Records, utils.Pluralize(status.Records, "password", "passwords"))
			}
			fmt.Println()

			if !utils.Confirm(newInputReader(), cmd.OutOrStdout(), "Do you want to continue?") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		spinner, cleanup := startSpinner("Generating new key...")
		defer cleanup()

		status, err := workflows.RegenerateKey(cmd.Context(), workflows.KeyOptions{Settings: vaultSettings()})
		if status == nil {
			spinner.Stop()
			return reportError(err)
		}
		if err != nil {
			Logger.Warnf("Key regenerated, but cleanup failed: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " New key written to " + ui.Path.Sprint(status.Path) +
			"\n" + ui.Info.Sprint("→") + " Fingerprint " + ui.Highlight.Sprint(status.Fingerprint)
		return nil
	},
}
