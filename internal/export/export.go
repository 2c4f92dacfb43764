// Package export builds downloadable inventory reports from the currently
// loaded page of items.
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/erazemk/konzola/internal/model"
)

// ErrNoItems is returned when there is nothing to export; callers show it to
// the user and generate no file.
var ErrNoItems = errors.New("no products to export")

// Report columns, in order.
var columns = []string{"Name", "SKU", "Category", "Price (LKR)", "Quantity", "Status", "Supplier"}

// Filename returns the download name for the given extension, stamped with
// the generation date.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("inventory-report-%s.%s", now.Format("2006-01-02"), ext)
}

// row formats one item into report cells, with "-" standing in for missing
// values.
func row(item model.Item) []string {
	name := item.Name
	if name == "" {
		name = "-"
	}
	sku := item.SKU
	if sku == "" {
		sku = "-"
	}
	category := item.Category
	if category == "" {
		category = "-"
	}
	status := item.Status
	if status == "" {
		status = "-"
	}
	supplier := item.Supplier
	if supplier == "" {
		supplier = "-"
	}
	return []string{
		name,
		sku,
		category,
		fmt.Sprintf("%.2f", item.Price),
		fmt.Sprintf("%d", item.Quantity),
		status,
		supplier,
	}
}
