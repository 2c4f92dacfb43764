package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/erazemk/konzola/internal/model"
)

// XLSX writes the inventory report as a spreadsheet to w. Exporting an empty
// page is refused with ErrNoItems.
func XLSX(w io.Writer, items []model.Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventory"
	f.SetSheetName("Sheet1", sheet)

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("writing header cell: %w", err)
		}
	}

	for r, item := range items {
		cells := row(item)
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing spreadsheet: %w", err)
	}
	return nil
}
