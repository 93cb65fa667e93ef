// Package audit appends one JSONL record per export. The record carries a
// digest of the rendered output so re-runs over the same input can be
// checked for determinism.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/vulnticket/vulnticket/internal/types"
)

// ExportRecord is one line of the audit log.
type ExportRecord struct {
	Timestamp      time.Time      `json:"timestamp"`
	ExportID       string         `json:"export_id"`
	Input          string         `json:"input"`
	Output         string         `json:"output"`
	Format         string         `json:"format"`
	Environments   []string       `json:"environments"`
	Severities     []string       `json:"severities,omitempty"`
	Tickets        int            `json:"tickets"`
	SeverityCounts map[string]int `json:"severity_counts,omitempty"`
	Duration       string         `json:"duration"`
	Digest         string         `json:"digest"`
}

// Log appends export records to a JSONL file next to the output.
type Log struct {
	logPath string
}

// NewLog places the audit log in the output file's directory.
func NewLog(outputPath string) *Log {
	dir := filepath.Dir(outputPath)
	return &Log{logPath: filepath.Join(dir, ".vulnticket_audit.jsonl")}
}

// Path returns the audit log location.
func (l *Log) Path() string { return l.logPath }

// Append writes one record, filling ExportID when empty.
func (l *Log) Append(rec ExportRecord) error {
	if rec.ExportID == "" {
		rec.ExportID = fmt.Sprintf("export_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}
	return nil
}

// History reads all records, newest first. Malformed lines are skipped.
func (l *Log) History() ([]ExportRecord, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var records []ExportRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		var rec ExportRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Digest hashes every ticket's title and description into a stable hex
// digest. Identical inputs and selections must yield identical digests.
func Digest(tickets []types.Ticket) string {
	h := xxhash.New()
	for _, t := range tickets {
		h.WriteString(t.Title)
		h.WriteString("\x00")
		h.WriteString(t.Description)
		h.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// NewExportRecord assembles a record for one completed export.
func NewExportRecord(input, output, format string, sel types.Selection, tickets []types.Ticket, groups map[string]int, duration time.Duration) ExportRecord {
	return ExportRecord{
		Timestamp:      time.Now(),
		Input:          input,
		Output:         output,
		Format:         format,
		Environments:   sel.Environments,
		Severities:     sel.Severities,
		Tickets:        len(tickets),
		SeverityCounts: groups,
		Duration:       duration.String(),
		Digest:         Digest(tickets),
	}
}
