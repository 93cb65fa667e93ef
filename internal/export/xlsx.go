// Package export writes rendered tickets to their output media: a styled
// two-column workbook, a Jira-importable CSV, or a terminal preview. It
// never touches grouping or rendering logic; tickets arrive fully formed.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vulnticket/vulnticket/internal/types"
)

const sheetName = "Final Format"

// Output column names for the two-column ticket table.
var ticketHeader = []string{"Ticket_Title", "JIRA_Description"}

// maxColWidth caps content-sized column widths so huge descriptions do not
// produce unusable sheets.
const maxColWidth = 100

// WriteXLSX writes tickets to a workbook: bold white-on-blue wrapped header,
// content-sized column widths, wrapped body cells, frozen header row.
func WriteXLSX(path string, tickets []types.Ticket) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Border:    []excelize.Border{{Type: "bottom", Style: 1, Color: "000000"}},
		Alignment: &excelize.Alignment{WrapText: true},
	})
	if err != nil {
		return err
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	for i, name := range ticketHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	widths := []int{len(ticketHeader[0]), len(ticketHeader[1])}
	for row, t := range tickets {
		for col, val := range []string{t.Title, t.Description} {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, wrapStyle); err != nil {
				return err
			}
			if l := len(val); l > widths[col] {
				widths[col] = l
			}
		}
	}

	for i, w := range widths {
		if w+2 > maxColWidth {
			w = maxColWidth - 2
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(w+2)); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
