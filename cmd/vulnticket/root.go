package vulnticket

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagSheet   string
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the vulnticket CLI.
var rootCmd = &cobra.Command{
	Use:           "vulnticket",
	Short:         "Turn vulnerability scan exports into ticket-ready rows",
	Long:          "vulnticket reads a tabular vulnerability scan export, filters it by environment and severity, groups findings by synopsis, and writes ticket titles and descriptions ready for import into an issue tracker.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the vulnticket CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (overrides discovery)")
	rootCmd.PersistentFlags().StringVar(&flagSheet, "sheet", "", "worksheet to read from xlsx input (default: first)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
