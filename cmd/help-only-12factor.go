package cmd

import (
	"fmt"

	"github.com/relloyd/dwhpipe/constants"
	"github.com/spf13/cobra"
)

var twelveFactorCmd = &cobra.Command{
	Use:   "12f",
	Short: `View help notes for running in Twelve-Factor mode`,
	Long: fmt.Sprintf(`
dwhp can be controlled by environment variables, which suits running it as a step 
inside a container-based orchestrator.

To enable Twelve-Factor mode, set environment variable %[1]s_12FACTOR_MODE=1. 
To supply flags documented by the regular command-line usage, set an 
equivalent environment variable using the following convention: 

%[1]s_<flag long-name in upper case>

For example, this will print the COPY and INSERT statements for Snowflake as JSON:

export %[1]s_12FACTOR_MODE=1
export %[1]s_LOG_LEVEL=info
export %[1]s_COMMAND=render
export %[1]s_STAGES=copy,insert
export %[1]s_DIALECT=snowflake
export %[1]s_OUTPUT=json
export %[1]s_IAM_ROLE_ARN=arn:aws:iam::123456789012:role/dwhRole

Then execute the CLI tool without any arguments or flags. Logs are written to 
stderr as JSON.

`, constants.EnvVarPrefix),
}

func init() {
	rootCmd.AddCommand(twelveFactorCmd)
}
