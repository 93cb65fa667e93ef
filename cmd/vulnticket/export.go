package vulnticket

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vulnticket/vulnticket/internal/audit"
	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/export"
	"github.com/vulnticket/vulnticket/internal/pipeline"
	"github.com/vulnticket/vulnticket/internal/table"
	"github.com/vulnticket/vulnticket/internal/types"
)

var (
	flagInput      string
	flagOut        string
	flagFormat     string
	flagEnvs       []string
	flagSevs       []string
	flagJira       bool
	flagProject    string
	flagIssueType  string
	flagCodeBlocks bool
	flagNoAudit    bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build tickets from a scan export and write them out",
		RunE:  runExport,
		Example: `
# All PRD findings, every severity, styled workbook
vulnticket export -i scan.xlsx --env PRD -o tickets.xlsx

# Critical and High in PRD and ACP, straight to the Jira importer
vulnticket export -i scan.xlsx --env PRD,ACP --severity Critical,High \
  --jira --project OPS --issue-type Bug -o import.csv
`,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagInput, "input", "i", "", "scan export to read (.xlsx or .csv)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (extension decides format unless --format is set)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "output format: xlsx|csv (default: from --out extension)")
	cmd.Flags().StringSliceVar(&flagEnvs, "env", nil, "environment codes to include (Dev,TST,ACP,PRD)")
	cmd.Flags().StringSliceVar(&flagSevs, "severity", nil, "severities to include (empty = all)")
	cmd.Flags().BoolVar(&flagJira, "jira", false, "write the four-column Jira import projection")
	cmd.Flags().StringVar(&flagProject, "project", "", "Jira project key (required with --jira)")
	cmd.Flags().StringVar(&flagIssueType, "issue-type", "", "Jira issue type (default Bug)")
	cmd.Flags().BoolVar(&flagCodeBlocks, "code-blocks", false, "wrap plugin text in Jira {code} markers")
	cmd.Flags().BoolVar(&flagNoAudit, "no-audit", false, "skip the export audit log")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	start := time.Now()
	cfg := loadConfig(flagInput)
	maps := config.BuildMaps(cfg)

	sel := types.Selection{Environments: flagEnvs, Severities: flagSevs}
	if len(sel.Environments) == 0 {
		return pipeline.ErrNoEnvironments
	}

	records, err := table.Load(flagInput, orDefault(flagSheet, cfg.Sheet, ""))
	if err != nil {
		return err
	}

	sorted, err := pipeline.FilterRank(records, sel, maps)
	if errors.Is(err, pipeline.ErrNoMatchingRecords) {
		// A defined empty outcome, not a failure: report and exit clean.
		fmt.Fprintln(cmd.OutOrStdout(), "No rows found after applying filters; nothing to export.")
		return nil
	}
	if err != nil {
		return err
	}
	groups := pipeline.Partition(sorted)
	tickets := pipeline.Render(groups, maps, pipeline.RenderOptions{CodeBlocks: flagCodeBlocks})

	format := flagFormat
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(flagOut)), ".")
	}

	switch format {
	case "xlsx":
		if err := export.WriteXLSX(flagOut, tickets); err != nil {
			return err
		}
	case "csv":
		f, err := os.Create(flagOut)
		if err != nil {
			return err
		}
		if flagJira {
			project := orDefault(flagProject, cfg.Project, "")
			if project == "" {
				f.Close()
				return fmt.Errorf("--jira requires a project key (--project or config)")
			}
			issueType := orDefault(flagIssueType, cfg.IssueType, "Bug")
			err = export.WriteJiraCSV(f, tickets, export.JiraOptions{Project: project, IssueType: issueType})
		} else {
			err = export.WriteCSV(f, tickets)
		}
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (want xlsx or csv)", format)
	}

	if !pickBool(flagNoAudit, cfg.NoAudit) {
		counts := make(map[string]int, len(groups))
		for _, g := range groups {
			counts[g.VPR]++
		}
		rec := audit.NewExportRecord(flagInput, flagOut, format, sel, tickets, counts, time.Since(start))
		if err := audit.NewLog(flagOut).Append(rec); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: audit log not written:", err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d tickets to %s\n", len(tickets), flagOut)
	return nil
}
