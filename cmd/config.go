package cmd

import (
	"fmt"

	"github.com/relloyd/dwhpipe/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration used to render statements",
	Long: fmt.Sprintf(`Inspect the configuration where:

- Values are read from file %q unless --config is given
- Environment variables override the file
`, config.DefaultPath()),
}

func init() {
	rootCmd.AddCommand(configCmd)
}
