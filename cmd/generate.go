package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/PolarWolf314/passvault/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	generateLength    int
	generateSpecial   bool
	generateDigits    bool
	generateUppercase bool
	generateLowercase bool
	generateNoSave    bool
	generateCopy      bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "n", 0, "password length")
	generateCmd.Flags().BoolVar(&generateSpecial, "special", false, "include special characters (--special=false to exclude)")
	generateCmd.Flags().BoolVar(&generateDigits, "digits", false, "include digits (--digits=false to exclude)")
	generateCmd.Flags().BoolVar(&generateUppercase, "upper", false, "include uppercase letters (--upper=false to exclude)")
	generateCmd.Flags().BoolVar(&generateLowercase, "lower", false, "include lowercase letters (--lower=false to exclude)")
	generateCmd.Flags().BoolVar(&generateNoSave, "no-save", false, "do not remember these settings")
	generateCmd.Flags().BoolVarP(&generateCopy, "copy", "c", false, "copy the password to the clipboard instead of printing it")
}

func resetGenerateCommandState() {
	generateLength = 0
	generateSpecial = false
	generateDigits = false
	generateUppercase = false
	generateLowercase = false
	generateNoSave = false
	generateCopy = false
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random password",
	Long: `Generates a random password with at least one character from every selected
class.

Settings that are not given on the command line are taken from config.toml.
The settings used are remembered for the next run unless --no-save is given.

Examples:
  passvault generate
  passvault generate --length 24 --special=false
  passvault generate --copy`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")

		opts := workflows.GenerateOptions{Settings: vaultSettings(), NoSave: generateNoSave}
		flags := cmd.Flags()
		if flags.Changed("length") {
			opts.Length = &generateLength
		}
		if flags.Changed("special") {
			opts.Special = &generateSpecial
		}
		if flags.Changed("digits") {
			opts.Digits = &generateDigits
		}
		if flags.Changed("upper") {
			opts.Uppercase = &generateUppercase
		}
		if flags.Changed("lower") {
			opts.Lowercase = &generateLowercase
		}

		res, err := workflows.GeneratePassword(cmd.Context(), opts)
		if err != nil {
			return reportError(err)
		}
		if res.Saved {
			Logger.Infof("Saved generator settings to %s", vaultSettings().ConfigFile())
		}

		if generateCopy {
			if err := writeClipboard(res.Password); err != nil {
				return Logger.ErrorfAndReturn("failed to copy to clipboard: %v", err)
			}
			fmt.Printf("%s Copied a %d-character password to the clipboard\n", ui.Success.Sprint("✓"), len(res.Password))
			return nil
		}

		fmt.Println(res.Password)
		return nil
	},
}
