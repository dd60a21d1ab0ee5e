package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/utils"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	addService  string
	addLogin    string
	addPassword passwordFlags
)

func init() {
	addCmd.Flags().StringVarP(&addService, "service", "s", "", "service the credential belongs to")
	addCmd.Flags().StringVarP(&addLogin, "login", "l", "", "login or user name")
	addPassword.register(addCmd)
}

func resetAddCommandState() {
	addService = ""
	addLogin = ""
	addPassword.reset()
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Store a new password",
	Long: `Stores a new credential. The password is encrypted before it is written.

Missing values are prompted for; the password prompt does not echo. All three
fields are required and surrounding whitespace is removed.

Examples:
  passvault add
  passvault add --service github --login octocat
  passvault add -s github -l octocat --generate
  echo "$PASSWORD" | passvault add -s github -l octocat --password-stdin`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")
		reader := newInputReader()

		service := addService
		if !cmd.Flags().Changed("service") {
			var err error
			if service, err = utils.PromptLine(reader, cmd.OutOrStdout(), "Service", ""); err != nil {
				return Logger.ErrorfAndReturn("failed to read service: %v", err)
			}
		}

		login := addLogin
		if !cmd.Flags().Changed("login") {
			var err error
			if login, err = utils.PromptLine(reader, cmd.OutOrStdout(), "Login", ""); err != nil {
				return Logger.ErrorfAndReturn("failed to read login: %v", err)
			}
		}

		password, err := addPassword.read(cmd, reader, true)
		if err != nil {
			return reportError(err)
		}

		cred, err := workflows.ValidateCredential(service, login, *password)
		if err != nil {
			return reportError(err)
		}

		v, ok, err := openVault(cmd.Context())
		if !ok {
			return err
		}
		defer closeVault(v)

		spinner, cleanup := startSpinner("Saving password...")
		defer cleanup()

		res, err := workflows.Add(cmd.Context(), v, workflows.AddOptions{
			Service:  cred.Service,
			Login:    cred.Login,
			Password: cred.Password,
		})
		if err != nil {
			spinner.Stop()
			return reportError(err)
		}

		Logger.Infof("Stored record %d", res.ID)
		spinner.FinalMSG = fmt.Sprintf("%s Saved %s", ui.Success.Sprint("✓"), recordLabel(res.ID, res.Service, res.Login))
		return nil
	},
}
