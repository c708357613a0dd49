package cmd

import (
	"github.com/relloyd/dwhpipe/actions"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded configuration with secrets redacted",
	Long: `Print the loaded configuration with the database password and IAM role account redacted.
Supply a dialect to also check that the values can be rendered into its statements.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configShowCfg.StackDumpOnPanic = stackDumpOnPanic
		configShowCfg.Out = cmd.OutOrStdout()
		return actions.RunShowConfig(&configShowCfg)
	},
}

var configShowCfg = actions.ShowConfigConfig{
	LogLevel: "warn",
	Output:   constants.OutputFormatYAML,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configShowCmd.Flags().SortFlags = false
	switches.addFlag(configShowCmd, &configShowCfg.Output, "config-output", constants.OutputFormatYAML, false, "")
	switches.addFlag(configShowCmd, &configShowCfg.Dialect, "validate-dialect", "", false, "")
	switches.addFlag(configShowCmd, &configShowCfg.ConfigFile, "config-file", "", false, "")
	switches.addFlag(configShowCmd, &configShowCfg.LogLevel, "log-level", "warn", false, "")
}
