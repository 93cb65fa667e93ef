package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/types"
)

// naValue substitutes for the two explicitly-defaulted display fields
// (first discovered, CVE) when the source cell is empty.
const naValue = "N/A"

// RenderOptions tweaks description rendering. The zero value matches the
// plain export format.
type RenderOptions struct {
	// CodeBlocks wraps the sanitized plugin text in Jira {code} markers,
	// which keeps scanner output monospaced in Jira's renderer.
	CodeBlocks bool
}

// Render produces one Ticket per group, in group order.
//
// The title is "apps - severity - vulnerability", where apps is the
// deduplicated, lexicographically sorted set of applications resolved from
// the group's hostnames, and the vulnerability name is taken from the first
// record in the group's stable order. The description lists every member
// record as its own block.
func Render(groups []Group, maps config.Maps, opts RenderOptions) []types.Ticket {
	tickets := make([]types.Ticket, 0, len(groups))
	for _, g := range groups {
		tickets = append(tickets, types.Ticket{
			Title:       title(g, maps),
			Description: description(g, opts),
		})
	}
	return tickets
}

// BuildTickets runs the full pipeline: filter and rank, partition, render.
func BuildTickets(records []types.Record, sel types.Selection, maps config.Maps, opts RenderOptions) ([]types.Ticket, error) {
	sorted, err := FilterRank(records, sel, maps)
	if err != nil {
		return nil, err
	}
	return Render(Partition(sorted), maps, opts), nil
}

func title(g Group, maps config.Maps) string {
	apps := make(map[string]bool)
	for _, r := range g.Records {
		apps[maps.Application(r.Hostname)] = true
	}

	// A group with any known application should not advertise the unknown
	// placeholder alongside it.
	if len(apps) > 1 {
		delete(apps, config.UnknownApp)
	}
	names := make([]string, 0, len(apps))
	for app := range apps {
		names = append(names, app)
	}
	sort.Strings(names)
	appString := strings.Join(names, ", ")
	if appString == "" {
		appString = config.UnknownApp
	}

	return fmt.Sprintf("%s - %s - %s", appString, g.VPR, g.Records[0].Vulnerability)
}

func description(g Group, opts RenderOptions) string {
	var b strings.Builder
	b.WriteString("Affected Hosts:\n")
	for _, r := range g.Records {
		pluginText := SanitizePluginText(r.PluginText)
		if opts.CodeBlocks {
			pluginText = "{code}" + pluginText + "{code}"
		}
		fmt.Fprintf(&b, "* Host: %s\n", r.Hostname)
		fmt.Fprintf(&b, "  Environment: %s\n", r.Environment)
		fmt.Fprintf(&b, "  Role: %s\n", r.Role)
		fmt.Fprintf(&b, "  Remediation: %s\n", r.Remediation)
		fmt.Fprintf(&b, "  First Discovered: %s\n", orNA(r.FirstDiscovered))
		fmt.Fprintf(&b, "  CVE: %s\n", orNA(r.CVE))
		fmt.Fprintf(&b, "  Plugin Text:\n%s\n\n", pluginText)
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return naValue
	}
	return s
}
