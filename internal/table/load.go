// Package table loads the tabular scan export (xlsx or csv) into records.
// It is a thin I/O shell: the only logic is the required-column check and
// string coercion of cell values.
package table

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vulnticket/vulnticket/internal/types"
)

// Load reads a scan export by extension: .xlsx workbooks or .csv files.
// sheet selects the worksheet for xlsx input; empty means the first sheet.
func Load(path, sheet string) ([]types.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path, sheet)
	case ".csv":
		return LoadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .xlsx or .csv)", filepath.Ext(path))
	}
}

// LoadXLSX reads records from a worksheet. The first row is the header.
func LoadXLSX(path, sheet string) ([]types.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return fromRows(rows)
}

// LoadCSV reads records from a comma-separated export with a header row.
func LoadCSV(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated; short rows read as empty cells
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) ([]types.Record, error) {
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Columns: RequiredColumns}
	}
	idx, err := checkHeader(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]types.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		cell := func(col string) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		records = append(records, types.Record{
			Hostname:        cell(ColHostname),
			Vulnerability:   cell(ColVulnerability),
			Remediation:     cell(ColRemediation),
			Role:            cell(ColRole),
			Environment:     cell(ColEnvironment),
			Synopsis:        cell(ColSynopsis),
			PluginText:      cell(ColPluginText),
			VPR:             cell(ColVPR),
			VPRScore:        cell(ColVPRScore),
			FirstDiscovered: cell(ColFirstDiscovered),
			CVE:             cell(ColCVE),
		})
	}
	return records, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
