package cmd

import (
	"github.com/relloyd/dwhpipe/actions"
	"github.com/relloyd/dwhpipe/constants"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [all|drop|create|copy|insert]...",
	Short: "Print the statements of one or more stages in execution order",
	Long: `Print the drop, create, copy and insert statements in the order they must be executed.
Supply one or more stages to limit the output, or none for all of them.
Parameters are read from the config file and the environment; rendering fails if the 
IAM role needed by the COPY statements cannot be found.`,
	Args: getStagesFromArgsFunc(&renderCfg.Stages),
	RunE: func(cmd *cobra.Command, args []string) error {
		renderCfg.StackDumpOnPanic = stackDumpOnPanic
		renderCfg.Out = cmd.OutOrStdout()
		return actions.RunRender(&renderCfg)
	},
}

var renderCfg = actions.RenderConfig{
	LogLevel: "warn",
	Dialect:  constants.DialectDefault,
	Output:   constants.OutputFormatSQL,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().SortFlags = false
	switches.addFlag(renderCmd, &renderCfg.Dialect, "dialect", constants.DialectDefault, false, "")
	switches.addFlag(renderCmd, &renderCfg.Output, "output", constants.OutputFormatSQL, false, "")
	switches.addFlag(renderCmd, &renderCfg.ConfigFile, "config-file", "", false, "")
	switches.addFlag(renderCmd, &renderCfg.LogLevel, "log-level", "warn", false, "")
}
