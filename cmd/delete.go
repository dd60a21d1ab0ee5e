package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip confirmation prompt")
}

func resetDeleteCommandState() {
	deleteYes = false
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>...",
	Aliases: []string{"rm"},
	Short:   "Delete stored passwords",
	Long: `Deletes one or more records by id. Ids can be separated by spaces or commas.

If any id is unknown nothing is deleted. Use --yes to skip the confirmation
prompt.

Examples:
  passvault delete 3
  passvault delete 3 4,7 --yes`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting delete command")

		ids, err := utils.ParseIDs(args)
		if err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		v, ok, err := openVault(cmd.Context())
		if !ok {
			return err
		}
		defer closeVault(v)

		if !deleteYes {
			fmt.Println("The following records will be deleted permanently:")
			for _, id := range dedupeIDs(ids) {
				rec, err := v.Store.Get(cmd.Context(), id)
				if err != nil {
					return reportError(err)
				}
				fmt.Println("  " + recordLabel(rec.ID, rec.Service, rec.Login))
			}
			fmt.Println()

			if !utils.Confirm(newInputReader(), cmd.OutOrStdout(), "Do you want to continue?") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		res, err := workflows.Delete(cmd.Context(), v, workflows.DeleteOptions{IDs: ids})
		if err != nil {
			return reportError(err)
		}

		for _, d := range res.Deleted {
			Logger.Debugf("Deleted record %d", d.ID)
		}
		fmt.Printf("%s Deleted %d %s\n", ui.Success.Sprint("✓"), len(res.Deleted), utils.Pluralize(len(res.Deleted), "record", "records"))
		return nil
	},
}

func dedupeIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
