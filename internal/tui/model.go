package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/pipeline"
	"github.com/vulnticket/vulnticket/internal/table"
	"github.com/vulnticket/vulnticket/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	paneBorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type phase int

const (
	phaseFiles phase = iota
	phaseFilters
	phaseTickets
)

// filterItem is one toggleable row on the filter screen: either an
// environment code or a severity label.
type filterItem struct {
	label   string
	env     bool
	checked bool
}

type model struct {
	opts Options
	maps config.Maps

	phase  phase
	width  int
	height int
	status string
	err    error

	// file picker
	files      []string
	fileCursor int
	input      string // chosen workbook path

	// filter toggles
	items        []filterItem
	filterCursor int
	project      textinput.Model
	issueType    string

	// results
	tickets      []types.Ticket
	ticketCursor int
	detail       viewport.Model
	detailReady  bool
}

func newModel(opts Options, maps config.Maps) (*model, error) {
	files, err := table.Discover(opts.Dir, opts.Pattern)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no scan exports matching %q in %s", opts.Pattern, opts.Dir)
	}

	items := make([]filterItem, 0, len(types.EnvCodes)+len(types.Severities))
	for _, code := range types.EnvCodes {
		items = append(items, filterItem{label: code, env: true})
	}
	for _, sev := range types.Severities {
		items = append(items, filterItem{label: string(sev)})
	}

	project := textinput.New()
	project.Placeholder = "Jira project key"
	project.SetValue(opts.Project)
	project.CharLimit = 16

	issueType := opts.IssueType
	if issueType == "" {
		issueType = "Bug"
	}

	return &model{
		opts:      opts,
		maps:      maps,
		files:     files,
		items:     items,
		project:   project,
		issueType: issueType,
		status:    "Ready",
	}, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail = viewport.New(msg.Width-4, msg.Height-8)
		m.detailReady = true
		m.syncDetail()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.phase != phaseFilters || !m.project.Focused() {
			return m, tea.Quit
		}
	case "esc":
		switch m.phase {
		case phaseFilters:
			if m.project.Focused() {
				m.project.Blur()
				return m, nil
			}
			m.phase = phaseFiles
		case phaseTickets:
			m.phase = phaseFilters
		}
		return m, nil
	}

	switch m.phase {
	case phaseFiles:
		return m.handleFilesKey(msg)
	case phaseFilters:
		return m.handleFiltersKey(msg)
	default:
		return m.handleTicketsKey(msg)
	}
}

func (m *model) handleFilesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.fileCursor > 0 {
			m.fileCursor--
		}
	case "down", "j":
		if m.fileCursor < len(m.files)-1 {
			m.fileCursor++
		}
	case "enter":
		m.input = filepath.Join(m.opts.Dir, m.files[m.fileCursor])
		m.phase = phaseFilters
		m.status = "Pick environments and severities, then press enter"
	}
	return m, nil
}

func (m *model) handleFiltersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.project.Focused() {
		if msg.String() == "enter" {
			m.project.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.project, cmd = m.project.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case "down", "j":
		if m.filterCursor < len(m.items)-1 {
			m.filterCursor++
		}
	case " ":
		m.items[m.filterCursor].checked = !m.items[m.filterCursor].checked
	case "p":
		m.project.Focus()
		return m, textinput.Blink
	case "i":
		m.issueType = nextIssueType(m.issueType)
	case "enter":
		m.buildTickets()
	}
	return m, nil
}

func (m *model) handleTicketsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.ticketCursor > 0 {
			m.ticketCursor--
			m.syncDetail()
		}
	case "down", "j":
		if m.ticketCursor < len(m.tickets)-1 {
			m.ticketCursor++
			m.syncDetail()
		}
	case "pgup":
		m.detail.HalfViewUp()
	case "pgdown":
		m.detail.HalfViewDown()
	case "c":
		m.copyTicket()
	case "x":
		m.exportXLSX()
	case "J":
		m.exportJiraCSV()
	}
	return m, nil
}

// selection collects the checked toggles into the pipeline's input shape.
func (m *model) selection() types.Selection {
	var sel types.Selection
	for _, it := range m.items {
		if !it.checked {
			continue
		}
		if it.env {
			sel.Environments = append(sel.Environments, it.label)
		} else {
			sel.Severities = append(sel.Severities, it.label)
		}
	}
	return sel
}

func (m *model) buildTickets() {
	sel := m.selection()
	if len(sel.Environments) == 0 {
		m.err = pipeline.ErrNoEnvironments
		return
	}
	records, err := table.Load(m.input, m.opts.Sheet)
	if err != nil {
		m.err = err
		return
	}
	tickets, err := pipeline.BuildTickets(records, sel, m.maps, pipeline.RenderOptions{})
	if err != nil {
		if errors.Is(err, pipeline.ErrNoMatchingRecords) {
			m.err = nil
			m.status = "No rows found after applying filters"
			return
		}
		m.err = err
		return
	}
	m.err = nil
	m.tickets = tickets
	m.ticketCursor = 0
	m.phase = phaseTickets
	m.status = fmt.Sprintf("%d tickets from %s", len(tickets), filepath.Base(m.input))
	m.syncDetail()
}

func (m *model) syncDetail() {
	if !m.detailReady || len(m.tickets) == 0 {
		return
	}
	t := m.tickets[m.ticketCursor]
	m.detail.SetContent(t.Title + "\n\n" + t.Description)
	m.detail.GotoTop()
}

func nextIssueType(cur string) string {
	order := []string{"Bug", "Task", "Story", "Epic"}
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return order[0]
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("vulnticket: scan to ticket exporter"))
	b.WriteString("\n\n")

	switch m.phase {
	case phaseFiles:
		b.WriteString("Select a scan export:\n\n")
		for i, f := range m.files {
			cursor := "  "
			line := f
			if i == m.fileCursor {
				cursor = cursorStyle.Render("> ")
				line = cursorStyle.Render(f)
			}
			b.WriteString(cursor + line + "\n")
		}
		b.WriteString("\n[enter] select  [q] quit\n")
	case phaseFilters:
		b.WriteString("Environments / severities (space toggles):\n\n")
		for i, it := range m.items {
			cursor := "  "
			if i == m.filterCursor && !m.project.Focused() {
				cursor = cursorStyle.Render("> ")
			}
			box := "[ ]"
			label := it.label
			if it.checked {
				box = checkedStyle.Render("[x]")
				label = checkedStyle.Render(it.label)
			}
			kind := "sev"
			if it.env {
				kind = "env"
			}
			b.WriteString(fmt.Sprintf("%s%s %s  (%s)\n", cursor, box, label, kind))
		}
		b.WriteString("\nProject: " + m.project.View())
		b.WriteString("   Issue type: " + m.issueType + "\n")
		b.WriteString("\n[space] toggle  [p] project  [i] issue type  [enter] build  [esc] back\n")
	case phaseTickets:
		b.WriteString(fmt.Sprintf("Ticket %d/%d\n", m.ticketCursor+1, len(m.tickets)))
		if m.detailReady {
			b.WriteString(paneBorderStyle.Render(m.detail.View()))
			b.WriteString("\n")
		}
		b.WriteString("[up/down] ticket  [pgup/pgdn] scroll  [c] copy  [x] xlsx  [J] jira csv  [esc] back\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n" + statusStyle.Render(" "+m.status+" "))
	return b.String()
}
