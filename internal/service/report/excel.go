package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const reportSheet = "Report"

// RenderXLSX renders the same section descriptors as a spreadsheet: one
// label/value grid, with text blocks placed in merged-free single cells.
func RenderXLSX(sections []Section) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", reportSheet)
	if err := f.SetColWidth(reportSheet, "A", "A", 28); err != nil {
		return nil, fmt.Errorf("failed to size report columns: %w", err)
	}
	if err := f.SetColWidth(reportSheet, "B", "B", 90); err != nil {
		return nil, fmt.Errorf("failed to size report columns: %w", err)
	}

	row := 1
	set := func(col string, r int, value interface{}) {
		cell := fmt.Sprintf("%s%d", col, r)
		f.SetCellValue(reportSheet, cell, value)
	}

	for _, s := range sections {
		switch s := s.(type) {
		case *HeaderSection:
			set("A", row, s.Brand)
			set("B", row, s.Subtitle)
			row++
			set("A", row, s.Meta)
			row += 2
		case *KeyValueSection:
			set("A", row, s.Title)
			row++
			for _, pair := range s.Pairs {
				set("A", row, pair.Label)
				set("B", row, pair.Value)
				row++
			}
			row++
		case *SummarySection:
			set("A", row, s.Title)
			row++
			set("A", row, "Risk Level")
			set("B", row, s.RiskLevel)
			row++
			set("A", row, "Confidence")
			set("B", row, fmt.Sprintf("%.1f%%", s.Confidence))
			row++
			set("A", row, "Risk Score")
			set("B", row, fmt.Sprintf("%.1f%%", s.RiskScore))
			row += 2
		case *TextSection:
			set("A", row, s.Title)
			set("B", row, s.Body)
			row += 2
		case *DisclaimerSection:
			set("A", row, s.Title)
			set("B", row, s.Body)
			row += 2
		case *FooterSection:
			set("A", row, s.Left)
			set("B", row, s.Right)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
