package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <id>",
	Short: "Copy a password to the clipboard",
	Long: `Decrypts a stored password and copies it to the system clipboard without
printing it.

Examples:
  passvault copy 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting copy command")

		ids, err := utils.ParseIDs(args)
		if err != nil || len(ids) != 1 {
			return Logger.ErrorfAndReturn("expected a single record id, got %q", args[0])
		}

		v, ok, err := openVault(cmd.Context())
		if !ok {
			return err
		}
		defer closeVault(v)

		entry, err := workflows.Get(cmd.Context(), v, ids[0])
		if err != nil {
			return reportError(err)
		}

		if err := writeClipboard(entry.Password); err != nil {
			return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
		}

		fmt.Printf("%s Copied the password for %s\n", ui.Success.Sprint("✓"), recordLabel(entry.ID, entry.Service, entry.Login))
		return nil
	},
}
