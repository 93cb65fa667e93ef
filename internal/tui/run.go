package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vulnticket/vulnticket/internal/config"
)

// Options seeds the interactive session.
type Options struct {
	Dir       string // directory to discover workbooks in
	Pattern   string // doublestar glob for candidates
	Sheet     string // worksheet to read from xlsx inputs
	Project   string // default Jira project key
	IssueType string // default Jira issue type
}

// Run starts the interactive exporter: pick a workbook, toggle environment
// and severity filters, browse the resulting tickets, export or copy them.
func Run(opts Options, maps config.Maps) error {
	m, err := newModel(opts, maps)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
