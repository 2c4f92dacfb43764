package export

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/erazemk/konzola/internal/model"
)

var testItems = []model.Item{
	{Name: "HDMI Cable", SKU: "HDM-001", Category: "Cables", Price: 9.99, Quantity: 12, MinStock: 5, Status: model.StatusInStock, Supplier: "CableCo"},
	{Name: "Soldering Iron", SKU: "SOL-002", Category: "Tools", Price: 25, Quantity: 0, MinStock: 2, Status: model.StatusOutOfStock},
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC)
	if got := Filename("pdf", now); got != "inventory-report-2026-03-14.pdf" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("xlsx", now); got != "inventory-report-2026-03-14.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}

func TestPDFRefusesEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	err := PDF(&buf, nil, time.Now())
	if !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if buf.Len() != 0 {
		t.Error("no file content should be generated for an empty page")
	}
}

func TestPDFWritesDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, testItems, time.Now()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output does not look like a PDF document")
	}
}

func TestXLSXRefusesEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSX(&buf, nil); !errors.Is(err, ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := XLSX(&buf, testItems); err != nil {
		t.Fatalf("XLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening spreadsheet: %v", err)
	}
	defer f.Close()

	name, _ := f.GetCellValue("Inventory", "A2")
	if name != "HDMI Cable" {
		t.Errorf("expected first item name in A2, got %q", name)
	}
	supplier, _ := f.GetCellValue("Inventory", "G3")
	if supplier != "-" {
		t.Errorf("expected placeholder for missing supplier, got %q", supplier)
	}
	price, _ := f.GetCellValue("Inventory", "D2")
	if price != "9.99" {
		t.Errorf("expected formatted price, got %q", price)
	}
}
