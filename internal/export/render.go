package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/vulnticket/vulnticket/internal/types"
)

// PrintOptions controls the terminal preview renderers.
type PrintOptions struct {
	// Width truncates titles in the table preview; 0 means no truncation.
	Width int
	// Full includes complete descriptions in the text preview instead of
	// the first block only.
	Full bool
}

// PrintTable renders a bordered one-line-per-ticket summary.
func PrintTable(w io.Writer, tickets []types.Ticket, opts PrintOptions) {
	if len(tickets) == 0 {
		fmt.Fprintln(w, "No tickets to export")
		return
	}
	t := tablewriter.NewWriter(w)
	t.Header([]string{"#", "Hosts", "Ticket Title"})
	for i, tk := range tickets {
		title := tk.Title
		if opts.Width > 12 && len(title) > opts.Width-12 {
			title = title[:opts.Width-13] + "…"
		}
		t.Append([]string{fmt.Sprintf("%d", i+1), fmt.Sprintf("%d", hostCount(tk)), title})
	}
	t.Render()
	fmt.Fprintf(w, "\nTickets: %d\n", len(tickets))
}

// PrintText renders tickets in full, separated by rules, for piping into
// pagers or diffs.
func PrintText(w io.Writer, tickets []types.Ticket, opts PrintOptions) {
	if len(tickets) == 0 {
		fmt.Fprintln(w, "No tickets to export")
		return
	}
	for i, tk := range tickets {
		if i > 0 {
			fmt.Fprintln(w, strings.Repeat("-", 72))
		}
		fmt.Fprintf(w, "Title: %s\n", tk.Title)
		if opts.Full {
			fmt.Fprintln(w, tk.Description)
		} else {
			fmt.Fprintf(w, "Hosts: %d\n", hostCount(tk))
		}
	}
	fmt.Fprintf(w, "\nTickets: %d\n", len(tickets))
}

// hostCount counts member blocks in a rendered description. Each block
// starts with the "* Host:" marker.
func hostCount(t types.Ticket) int {
	return strings.Count(t.Description, "* Host:")
}
