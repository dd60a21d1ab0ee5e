package cmd

import (
	"fmt"

	"github.com/PolarWolf314/passvault/internal/configs"
	"github.com/PolarWolf314/passvault/internal/ui"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configShowCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect passvault configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show file locations and generator settings",
	Long: `Shows the effective locations of the config file, key file and database,
and the remembered password generator settings.

Set PASSVAULT_HOME to keep every file in a single directory.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		cfg, err := configs.LoadConfig(vaultSettings())
		if err != nil {
			return Logger.ErrorfAndReturn("failed to load config: %v", err)
		}
		settings := vaultSettings().WithOverrides(cfg)

		paths := uitable.New()
		paths.AddRow("Config file:", ui.Path.Sprint(settings.ConfigFile()))
		paths.AddRow("Key file:", ui.Path.Sprint(settings.KeyFilePath))
		paths.AddRow("Database:", ui.Path.Sprint(settings.DatabasePath))
		fmt.Println(paths.String())
		fmt.Println()

		gen := cfg.Generator
		generator := uitable.New()
		generator.AddRow("Length:", gen.Length)
		generator.AddRow("Special:", yesNo(gen.IncludeSpecial))
		generator.AddRow("Digits:", yesNo(gen.IncludeDigits))
		generator.AddRow("Uppercase:", yesNo(gen.IncludeUppercase))
		generator.AddRow("Lowercase:", yesNo(gen.IncludeLowercase))
		fmt.Println("Generator")
		fmt.Println(generator.String())
		return nil
	},
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
