package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/vulnticket/vulnticket/internal/export"
)

// copyTicket puts the selected ticket's title and description on the system
// clipboard for pasting straight into a tracker.
func (m *model) copyTicket() {
	if len(m.tickets) == 0 {
		return
	}
	t := m.tickets[m.ticketCursor]
	if err := clipboard.WriteAll(t.Title + "\n\n" + t.Description); err != nil {
		m.err = fmt.Errorf("clipboard: %w", err)
		return
	}
	m.err = nil
	m.status = "Ticket copied to clipboard"
}

// exportXLSX writes all tickets to a timestamped workbook next to the input.
func (m *model) exportXLSX() {
	if len(m.tickets) == 0 {
		return
	}
	path := m.exportPath("xlsx")
	if err := export.WriteXLSX(path, m.tickets); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "Wrote " + path
}

// exportJiraCSV writes the four-column Jira import projection. The project
// key must be filled in first.
func (m *model) exportJiraCSV() {
	if len(m.tickets) == 0 {
		return
	}
	project := strings.TrimSpace(m.project.Value())
	if project == "" {
		m.err = fmt.Errorf("enter a Jira project key first (press p)")
		return
	}
	path := m.exportPath("csv")
	f, err := os.Create(path)
	if err != nil {
		m.err = err
		return
	}
	defer f.Close()
	if err := export.WriteJiraCSV(f, m.tickets, export.JiraOptions{Project: project, IssueType: m.issueType}); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = "Wrote " + path
}

func (m *model) exportPath(ext string) string {
	timestamp := time.Now().Format("20060102-150405")
	return filepath.Join(m.opts.Dir, fmt.Sprintf("vulnticket-export-%s.%s", timestamp, ext))
}
