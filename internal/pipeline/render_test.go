package pipeline

import (
	"strings"
	"testing"

	"github.com/vulnticket/vulnticket/internal/config"
	"github.com/vulnticket/vulnticket/internal/types"
)

func mapsWithApps(apps map[string]string) config.Maps {
	m := config.DefaultMaps()
	m.Applications = apps
	return m
}

func TestPartition_ContiguousRuns(t *testing.T) {
	sorted := []types.Record{
		rec("h1", "a", "Critical", "1. Production"),
		rec("h2", "a", "Critical", "1. Production"),
		rec("h3", "a", "Low", "1. Production"),
		rec("h4", "b", "Low", "1. Production"),
	}
	groups := Partition(sorted)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if len(groups[0].Records) != 2 {
		t.Fatalf("first group should hold both Critical records, got %d", len(groups[0].Records))
	}
	if groups[1].VPR != "Low" || groups[1].Synopsis != "a" {
		t.Fatalf("unexpected second group key: %+v", groups[1])
	}
}

func TestPartition_UnrecognizedSeveritiesNeverMerge(t *testing.T) {
	// Both rank 99 and sort adjacently, but group on the raw string.
	sorted := []types.Record{
		rec("h1", "a", "Informational", "1. Production"),
		rec("h2", "a", "Bogus", "1. Production"),
	}
	groups := Partition(sorted)
	if len(groups) != 2 {
		t.Fatalf("unrecognized severities must not merge, got %d groups", len(groups))
	}
}

func TestRender_MixedApplicationGroup(t *testing.T) {
	// H1 maps to OneSumX, H2 is unmapped; one group, sentinel suppressed.
	maps := mapsWithApps(map[string]string{"H1": "OneSumX"})
	records := []types.Record{
		{Hostname: "H1", Synopsis: "Weak Cipher", VPR: "Critical", Vulnerability: "TLS 1.0 enabled", Environment: "1. Production"},
		{Hostname: "H2", Synopsis: "Weak Cipher", VPR: "Critical", Vulnerability: "TLS 1.0 enabled", Environment: "1. Production"},
	}
	tickets, err := BuildTickets(records, types.Selection{Environments: []string{"PRD"}}, maps, RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected one ticket, got %d", len(tickets))
	}
	if tickets[0].Title != "OneSumX - Critical - TLS 1.0 enabled" {
		t.Fatalf("unexpected title: %q", tickets[0].Title)
	}
	desc := tickets[0].Description
	if !strings.HasPrefix(desc, "Affected Hosts:\n") {
		t.Fatalf("description should open with the fixed header; got %q", desc[:30])
	}
	h1 := strings.Index(desc, "* Host: H1")
	h2 := strings.Index(desc, "* Host: H2")
	if h1 == -1 || h2 == -1 || h1 > h2 {
		t.Fatalf("expected both host blocks in input order; got:\n%s", desc)
	}
}

func TestRender_SentinelAloneStays(t *testing.T) {
	maps := mapsWithApps(map[string]string{})
	groups := []Group{{
		Synopsis: "s", VPR: "High",
		Records: []types.Record{rec("nohost", "s", "High", "1. Production")},
	}}
	tickets := Render(groups, maps, RenderOptions{})
	if !strings.HasPrefix(tickets[0].Title, "unknown - High - ") {
		t.Fatalf("all-unmapped group should title as unknown; got %q", tickets[0].Title)
	}
}

func TestRender_SentinelSuppressedAmongKnownApps(t *testing.T) {
	maps := mapsWithApps(map[string]string{"h1": "OneSumX", "h2": "Treasury"})
	groups := []Group{{
		Synopsis: "s", VPR: "High",
		Records: []types.Record{
			rec("h2", "s", "High", "1. Production"),
			rec("unmapped", "s", "High", "1. Production"),
			rec("h1", "s", "High", "1. Production"),
		},
	}}
	tickets := Render(groups, maps, RenderOptions{})
	// Sorted lexicographically, sentinel removed, joined with ", ".
	if !strings.HasPrefix(tickets[0].Title, "OneSumX, Treasury - High - ") {
		t.Fatalf("unexpected title: %q", tickets[0].Title)
	}
	if strings.Contains(tickets[0].Title, "unknown") {
		t.Fatalf("sentinel should be suppressed when a real application is present: %q", tickets[0].Title)
	}
}

func TestRender_TitleUsesFirstMemberVulnerability(t *testing.T) {
	maps := mapsWithApps(map[string]string{})
	first := rec("h1", "s", "High", "1. Production")
	first.Vulnerability = "first name"
	second := rec("h2", "s", "High", "1. Production")
	second.Vulnerability = "second name"
	tickets := Render([]Group{{Synopsis: "s", VPR: "High", Records: []types.Record{first, second}}}, maps, RenderOptions{})
	if !strings.HasSuffix(tickets[0].Title, " - first name") {
		t.Fatalf("title should carry the first member's vulnerability name: %q", tickets[0].Title)
	}
}

func TestRender_DescriptionFieldsAndDefaults(t *testing.T) {
	maps := mapsWithApps(map[string]string{})
	r := types.Record{
		Hostname:    "web01",
		Synopsis:    "s",
		VPR:         "Medium",
		Environment: "2. Acceptance",
		Role:        "Application Server",
		Remediation: "Upgrade to 9.2",
		PluginText:  "<plugin_output>  raw output  </plugin_output>",
	}
	tickets := Render([]Group{{Synopsis: "s", VPR: "Medium", Records: []types.Record{r}}}, maps, RenderOptions{})
	desc := tickets[0].Description
	for _, want := range []string{
		"* Host: web01\n",
		"  Environment: 2. Acceptance\n",
		"  Role: Application Server\n",
		"  Remediation: Upgrade to 9.2\n",
		"  First Discovered: N/A\n",
		"  CVE: N/A\n",
		"  Plugin Text:\nraw output\n",
	} {
		if !strings.Contains(desc, want) {
			t.Fatalf("description missing %q:\n%s", want, desc)
		}
	}
}

func TestRender_CodeBlocks(t *testing.T) {
	maps := mapsWithApps(map[string]string{})
	r := rec("h", "s", "Low", "1. Production")
	r.PluginText = "details"
	tickets := Render([]Group{{Synopsis: "s", VPR: "Low", Records: []types.Record{r}}}, maps, RenderOptions{CodeBlocks: true})
	if !strings.Contains(tickets[0].Description, "  Plugin Text:\n{code}details{code}\n") {
		t.Fatalf("expected {code} wrapping:\n%s", tickets[0].Description)
	}
}

func TestBuildTickets_GroupingCompleteness(t *testing.T) {
	maps := mapsWithApps(map[string]string{})
	records := []types.Record{
		rec("h1", "a", "Critical", "1. Production"),
		rec("h2", "a", "Critical", "1. Production"),
		rec("h3", "a", "Low", "1. Production"),
		rec("h4", "b", "Low", "4. Development"),
		rec("h5", "c", "High", "1. Production"),
	}
	tickets, err := BuildTickets(records, types.Selection{Environments: []string{"PRD", "Dev"}}, maps, RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Four distinct (synopsis, severity) pairs -> four tickets.
	if len(tickets) != 4 {
		t.Fatalf("expected 4 tickets, got %d", len(tickets))
	}
	// Every record appears in exactly one description.
	seen := map[string]int{}
	for _, tk := range tickets {
		for _, host := range []string{"h1", "h2", "h3", "h4", "h5"} {
			seen[host] += strings.Count(tk.Description, "* Host: "+host+"\n")
		}
	}
	for host, n := range seen {
		if n != 1 {
			t.Fatalf("record %s appears %d times across descriptions", host, n)
		}
	}
}

func TestBuildTickets_Deterministic(t *testing.T) {
	maps := mapsWithApps(map[string]string{"h1": "OneSumX"})
	records := []types.Record{
		rec("h2", "b", "Low", "1. Production"),
		rec("h1", "a", "Critical", "1. Production"),
		rec("h3", "a", "Critical", "1. Production"),
	}
	sel := types.Selection{Environments: []string{"PRD"}}
	first, err := BuildTickets(records, sel, maps, RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildTickets(records, sel, maps, RenderOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("ticket counts differ across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("run output differs at ticket %d:\n%q\nvs\n%q", i, first[i], second[i])
		}
	}
}
