package vulnticket

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/export"
	"github.com/vulnticket/vulnticket/internal/pipeline"
	"github.com/vulnticket/vulnticket/internal/table"
	"github.com/vulnticket/vulnticket/internal/types"
	"github.com/vulnticket/vulnticket/pkg/core"
)

var (
	flagPreviewEnvs []string
	flagPreviewSevs []string
	flagText        bool
	flagFull        bool
	flagJSON        bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render tickets to the terminal without writing files",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringSliceVar(&flagPreviewEnvs, "env", nil, "environment codes to include (Dev,TST,ACP,PRD)")
	cmd.Flags().StringSliceVar(&flagPreviewSevs, "severity", nil, "severities to include (empty = all)")
	cmd.Flags().BoolVar(&flagText, "text", false, "plain text output instead of a table")
	cmd.Flags().BoolVar(&flagFull, "full", false, "include complete descriptions (implies --text)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit tickets as JSON")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(args[0])
	maps := config.BuildMaps(cfg)

	records, err := table.Load(args[0], orDefault(flagSheet, cfg.Sheet, ""))
	if err != nil {
		return err
	}

	sel := types.Selection{Environments: flagPreviewEnvs, Severities: flagPreviewSevs}
	tickets, err := pipeline.BuildTickets(records, sel, maps, pipeline.RenderOptions{})
	if errors.Is(err, pipeline.ErrNoMatchingRecords) {
		fmt.Fprintln(cmd.OutOrStdout(), "No rows found after applying filters.")
		return nil
	}
	if err != nil {
		return err
	}

	if flagJSON {
		return core.MarshalTickets(cmd.OutOrStdout(), tickets)
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	opts := export.PrintOptions{Width: width, Full: flagFull}
	if flagText || flagFull {
		export.PrintText(cmd.OutOrStdout(), tickets, opts)
	} else {
		export.PrintTable(cmd.OutOrStdout(), tickets, opts)
	}
	return nil
}
