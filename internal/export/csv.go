package export

import (
	"encoding/csv"
	"io"

	"github.com/vulnticket/vulnticket/internal/types"
)

// JiraOptions carries the two caller-supplied constants copied into every
// row of the four-column Jira import projection.
type JiraOptions struct {
	Project   string // Jira project key, e.g. "OPS"
	IssueType string // e.g. "Bug"
}

// WriteCSV writes the two-column ticket table. Every field is quoted by the
// csv writer as needed; descriptions keep their embedded newlines.
func WriteCSV(w io.Writer, tickets []types.Ticket) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ticketHeader); err != nil {
		return err
	}
	for _, t := range tickets {
		if err := cw.Write([]string{t.Title, t.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJiraCSV writes the Jira importer projection: Issue Type, Project,
// Summary, Description. This is a pure relabeling of the ticket table with
// two constant columns; no grouping logic.
func WriteJiraCSV(w io.Writer, tickets []types.Ticket, opts JiraOptions) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Issue Type", "Project", "Summary", "Description"}); err != nil {
		return err
	}
	for _, t := range tickets {
		if err := cw.Write([]string{opts.IssueType, opts.Project, t.Title, t.Description}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
