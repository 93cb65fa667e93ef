package vulnticket

import (
	"github.com/spf13/cobra"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/tui"
)

var (
	flagDir     string
	flagPattern string
)

func init() {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Interactive exporter: pick a file, toggle filters, export",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := loadConfig("")
			return tui.Run(tui.Options{
				Dir:       flagDir,
				Pattern:   flagPattern,
				Sheet:     orDefault(flagSheet, cfg.Sheet, ""),
				Project:   orDefault("", cfg.Project, ""),
				IssueType: orDefault("", cfg.IssueType, "Bug"),
			}, config.BuildMaps(cfg))
		},
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagDir, "dir", "d", ".", "directory to look for scan exports in")
	cmd.Flags().StringVar(&flagPattern, "pattern", "*.{xlsx,csv}", "glob for candidate files")
}
