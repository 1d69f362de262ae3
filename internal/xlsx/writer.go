// Package xlsx serializes an ExportDocument into spreadsheet bytes. It is a
// presentation layer on top of the engine's output: nothing here validates
// or reorders payment data.
package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"paybatch/internal/core"
	"paybatch/internal/registry"
)

// Write renders the document into an .xlsx workbook with one sheet: a header
// row, one row per payment, and a totals row.
func Write(doc core.ExportDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := doc.SheetLabel
	if sheet == "" {
		sheet = "Payments"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	currencyStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create currency style: %w", err)
	}

	for i, header := range doc.Headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}
	}

	for r, row := range doc.Rows {
		for c, cell := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, fmt.Errorf("failed to compute cell name: %w", err)
			}
			if err := writeCell(f, sheet, name, cell, currencyStyle); err != nil {
				return nil, err
			}
		}
	}

	totalsRow := len(doc.Rows) + 2
	labelCell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	totalCell, _ := excelize.CoordinatesToCellName(2, totalsRow)
	countCell, _ := excelize.CoordinatesToCellName(3, totalsRow)
	if err := f.SetCellValue(sheet, labelCell, "Total"); err != nil {
		return nil, fmt.Errorf("failed to write totals label: %w", err)
	}
	total, _ := strconv.ParseFloat(core.FormatHalalas(doc.TotalAmountHalalas), 64)
	if err := f.SetCellValue(sheet, totalCell, total); err != nil {
		return nil, fmt.Errorf("failed to write total amount: %w", err)
	}
	if err := f.SetCellStyle(sheet, totalCell, totalCell, currencyStyle); err != nil {
		return nil, fmt.Errorf("failed to style total amount: %w", err)
	}
	if err := f.SetCellValue(sheet, countCell, fmt.Sprintf("%d records", doc.RecordCount)); err != nil {
		return nil, fmt.Errorf("failed to write record count: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeCell(f *excelize.File, sheet, name string, cell core.Cell, currencyStyle int) error {
	switch cell.Type {
	case registry.TypeNumber, registry.TypeCurrency:
		value, err := strconv.ParseFloat(cell.Value, 64)
		if err != nil {
			// Degrade gracefully: keep the raw text rather than failing
			// the whole workbook over one cell.
			if err := f.SetCellValue(sheet, name, cell.Value); err != nil {
				return fmt.Errorf("failed to write cell %s: %w", name, err)
			}
			return nil
		}
		if err := f.SetCellValue(sheet, name, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", name, err)
		}
		if cell.Type == registry.TypeCurrency {
			if err := f.SetCellStyle(sheet, name, name, currencyStyle); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", name, err)
			}
		}
	default:
		if err := f.SetCellValue(sheet, name, cell.Value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", name, err)
		}
	}
	return nil
}
