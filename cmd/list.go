package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

var listShow bool

func init() {
	listCmd.Flags().BoolVar(&listShow, "show", false, "show passwords instead of masking them")
}

func resetListCommandState() {
	listShow = false
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List stored passwords",
	Long: `Lists stored credentials sorted by service and login. Passwords are masked
unless --show is given.

The optional query keeps records whose service or login contains it,
ignoring case. Records encrypted with a different key are listed as
unreadable.

Examples:
  passvault list
  passvault list git
  passvault list --show`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")

		var query string
		if len(args) == 1 {
			query = args[0]
		}

		v, ok, err := openVault(cmd.Context())
		if !ok {
			return err
		}
		defer closeVault(v)

		res, err := workflows.List(cmd.Context(), v, workflows.ListOptions{Query: query})
		if err != nil {
			return reportError(err)
		}
		Logger.Debugf("Listed %d records, %d unreadable", len(res.Entries), res.Unreadable)

		if len(res.Entries) == 0 {
			if query != "" {
				fmt.Println("No passwords match " + ui.Highlight.Sprint(query))
			} else {
				fmt.Println("No passwords stored yet")
				fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("passvault add") + " to store one")
			}
			return nil
		}

		fmt.Println(renderEntries(res.Entries, listShow))

		if res.Unreadable > 0 {
			fmt.Println()
			Logger.WarnfUser("%d %s encrypted with a different key and cannot be read",
				res.Unreadable, utils.Pluralize(res.Unreadable, "password was", "passwords were"))
			fmt.Println(ui.Info.Sprint("→") + " Restore the matching key file, or give them new passwords with " + ui.Code.Sprint("passvault update <id>"))
		}
		return nil
	},
}

func renderEntries(entries []workflows.Entry, show bool) string {
	table := uitable.New()
	table.MaxColWidth = 48
	table.AddRow("ID", "SERVICE", "LOGIN", "PASSWORD")

	for _, e := range entries {
		var password string
		switch {
		case !e.Readable():
			password = ui.Unreadable()
		case show:
			password = ui.Secret.Sprint(e.Password)
		default:
			password = ui.Mask(e.Password)
		}
		table.AddRow(e.ID, e.Service, e.Login, password)
	}

	return table.String()
}
