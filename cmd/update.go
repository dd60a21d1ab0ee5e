package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	updateService  string
	updateLogin    string
	updatePassword passwordFlags
)

func init() {
	updateCmd.Flags().StringVarP(&updateService, "service", "s", "", "new service name")
	updateCmd.Flags().StringVarP(&updateLogin, "login", "l", "", "new login")
	updatePassword.register(updateCmd)
}

func resetUpdateCommandState() {
	updateService = ""
	updateLogin = ""
	updatePassword.reset()
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a stored credential",
	Long: `Changes the service, login or password of a stored record. Only the given
fields change.

A record that was encrypted with a different key can be renamed, or made
readable again by giving it a new password.

Examples:
  passvault update 3 --login monalisa
  passvault update 3 --generate
  echo "$PASSWORD" | passvault update 3 --password-stdin`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting update command")

		ids, err := utils.ParseIDs(args)
		if err != nil || len(ids) != 1 {
			return Logger.ErrorfAndReturn("expected a single record id, got %q", args[0])
		}

		opts := workflows.UpdateOptions{ID: ids[0]}
		if cmd.Flags().Changed("service") {
			opts.Service = &updateService
		}
		if cmd.Flags().Changed("login") {
			opts.Login = &updateLogin
		}
		if opts.Password, err = updatePassword.read(cmd, newInputReader(), false); err != nil {
			return reportError(err)
		}

		v, ok, err := openVault(cmd.Context())
		if !ok {
			return err
		}
		defer closeVault(v)

		spinner, cleanup := startSpinner("Updating record...")
		defer cleanup()

		res, err := workflows.Update(cmd.Context(), v, opts)
		if err != nil {
			spinner.Stop()
			return reportError(err)
		}

		msg := fmt.Sprintf("%s Updated %s", ui.Success.Sprint("✓"), recordLabel(res.ID, res.Service, res.Login))
		if res.PasswordChanged {
			msg += "\n" + ui.Info.Sprint("→") + " The password was replaced"
		}
		spinner.FinalMSG = msg
		return nil
	},
}
