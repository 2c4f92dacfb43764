package export

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/erazemk/konzola/internal/model"
)

// Column widths in mm, tuned for an A4 portrait page.
var pdfWidths = []float64{38, 24, 26, 26, 20, 26, 30}

// PDF writes the inventory report for the given items to w. Exporting an
// empty page is refused with ErrNoItems.
func PDF(w io.Writer, items []model.Item, now time.Time) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 10, "Inventory Report")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 11)
	doc.Cell(0, 6, fmt.Sprintf("Generated on: %s", now.Format("2006-01-02")))
	doc.Ln(6)
	doc.Cell(0, 6, fmt.Sprintf("Total Products: %d", len(items)))
	doc.Ln(10)

	// Header row.
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(41, 128, 185)
	doc.SetTextColor(255, 255, 255)
	for i, col := range columns {
		doc.CellFormat(pdfWidths[i], 8, col, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	// Data rows.
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for _, item := range items {
		cells := row(item)
		for i, cell := range cells {
			doc.CellFormat(pdfWidths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
