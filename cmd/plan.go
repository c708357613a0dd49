package cmd

import (
	"github.com/relloyd/dwhpipe/actions"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List every statement in execution order",
	Long: `List every statement with its kind, rank within the kind and target table in the order an 
orchestrator must execute them. No configuration is needed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		planCfg.StackDumpOnPanic = stackDumpOnPanic
		planCfg.Out = cmd.OutOrStdout()
		return actions.RunPlan(&planCfg)
	},
}

var planCfg = actions.PlanConfig{
	LogLevel: "warn",
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.Flags().SortFlags = false
	switches.addFlag(planCmd, &planCfg.Output, "plan-output", "", false, "")
	switches.addFlag(planCmd, &planCfg.LogLevel, "log-level", "warn", false, "")
}
