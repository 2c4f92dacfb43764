package view

import "strconv"

// BulkKind selects what a bulk action does to the catalog.
type BulkKind string

const (
	BulkDelete BulkKind = "delete"
	BulkPrice  BulkKind = "price"
	BulkStock  BulkKind = "stock"
)

// Price and stock adjustment directions.
const (
	PriceIncrease = "increase"
	PriceDecrease = "decrease"

	StockAdd      = "add"
	StockSubtract = "subtract"
	StockSet      = "set"
)

// BulkPayload is the confirmed delta operation: a percentage price change or
// a stock adjustment, with its direction. Delete carries no payload.
type BulkPayload struct {
	Percentage float64
	Quantity   int
	Type       string
}

// BulkDialog collects and validates a bulk action before confirmation. It is
// presentation-side only: the confirmed payload goes to the caller's
// callback, not to the inventory service.
type BulkDialog struct {
	Kind BulkKind

	PricePercentage string
	PriceType       string
	StockQuantity   string
	StockType       string
}

// NewBulkDialog creates a dialog with the default direction for each input.
func NewBulkDialog(kind BulkKind) *BulkDialog {
	return &BulkDialog{
		Kind:      kind,
		PriceType: PriceIncrease,
		StockType: StockAdd,
	}
}

// Valid reports whether the collected input allows confirmation. Delete needs
// none; price needs a positive percentage; stock needs a non-negative
// integer.
func (d *BulkDialog) Valid() bool {
	switch d.Kind {
	case BulkDelete:
		return true
	case BulkPrice:
		percentage, err := strconv.ParseFloat(d.PricePercentage, 64)
		return err == nil && percentage > 0
	case BulkStock:
		quantity, err := strconv.Atoi(d.StockQuantity)
		return err == nil && quantity >= 0
	}
	return false
}

// Confirm returns the payload for the collected input, or ok=false when
// validation fails and the confirmation must not fire. Delete confirms with a
// nil payload.
func (d *BulkDialog) Confirm() (payload *BulkPayload, ok bool) {
	if !d.Valid() {
		return nil, false
	}

	switch d.Kind {
	case BulkDelete:
		return nil, true
	case BulkPrice:
		percentage, _ := strconv.ParseFloat(d.PricePercentage, 64)
		return &BulkPayload{Percentage: percentage, Type: d.PriceType}, true
	case BulkStock:
		quantity, _ := strconv.Atoi(d.StockQuantity)
		return &BulkPayload{Quantity: quantity, Type: d.StockType}, true
	}
	return nil, false
}

// Title returns the dialog heading for the action.
func (d *BulkDialog) Title() string {
	switch d.Kind {
	case BulkDelete:
		return "Delete All Products"
	case BulkPrice:
		return "Update All Prices"
	case BulkStock:
		return "Update All Stock"
	}
	return "Bulk Action"
}
