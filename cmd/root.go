package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Default values may be set at compile time.
	version          = "0.1.0"
	buildDate        = "2020-01-02T03:04+0500"
	stackDumpOnPanic bool
)

var rootCmd = &cobra.Command{
	Use:   "dwhp",
	Short: "Render the SQL that builds the song-play star schema",
	Long: `
     _          _     
  __| |_      _| |__  _ __  
 / _` + "`" + ` \ \ /\ / / '_ \| '_ \ 
| (_| |\ V  V /| | | | |_) |
 \__,_| \_/\_/ |_| |_| .__/ 
                     |_|    

dwhp renders the statements that load song-play event logs from S3 into a star schema:
staging tables are dropped, created and bulk loaded with COPY, then the users, artists, songs
and time dimensions and the songplays fact table are filled from staging.
Statements are printed in execution order for an orchestrator to run; dwhp never connects
to a warehouse.`,
	SilenceUsage: true,
}

func init() {
	// General setup.
	cobra.EnableCommandSorting = false
	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&stackDumpOnPanic, "print-stack", false, "Print a stack dump if there is a panic")
	_ = rootCmd.PersistentFlags().MarkHidden("print-stack")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the action found in the environment when in twelveFactorMode, else the cobra command for args.
func run(args []string) error {
	if twelveFactorMode { // if we are running based on environment variables...
		// execute12FactorMode logs the error.
		return execute12FactorMode(twelveFactorActions)
	}
	rootCmd.SetArgs(args)
	// Execute() prints the error.
	return rootCmd.Execute()
}
