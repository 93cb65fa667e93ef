package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vulnticket/vulnticket/internal/types"
)

func TestPrintTable_WithTickets(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, sampleTickets, PrintOptions{})
	out := buf.String()
	if !strings.Contains(out, "OneSumX - Critical - TLS 1.0 enabled") {
		t.Fatalf("expected ticket title in table; got: %q", out)
	}
	if !strings.Contains(out, "Tickets: 2") {
		t.Fatalf("expected summary footer; got: %q", out)
	}
}

func TestPrintTable_NoTickets(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, nil, PrintOptions{})
	if !strings.Contains(buf.String(), "No tickets to export") {
		t.Fatalf("expected friendly empty message; got: %q", buf.String())
	}
}

func TestPrintText_FullIncludesDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleTickets, PrintOptions{Full: true})
	out := buf.String()
	if !strings.Contains(out, "* Host: H1") {
		t.Fatalf("expected full description; got: %q", out)
	}
	if !strings.Contains(out, strings.Repeat("-", 72)) {
		t.Fatalf("expected separator between tickets; got: %q", out)
	}
}

func TestPrintText_SummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	PrintText(&buf, sampleTickets, PrintOptions{})
	out := buf.String()
	if strings.Contains(out, "* Host:") {
		t.Fatalf("descriptions should be omitted without --full; got: %q", out)
	}
	if !strings.Contains(out, "Hosts: 1") {
		t.Fatalf("expected host count line; got: %q", out)
	}
}

func TestHostCount(t *testing.T) {
	tk := types.Ticket{Description: "Affected Hosts:\n* Host: a\n...\n* Host: b\n"}
	if got := hostCount(tk); got != 2 {
		t.Fatalf("hostCount = %d, want 2", got)
	}
}
