package model

// Item is a catalog product as the remote inventory API stores it. The ID is
// opaque; depending on the backend build it arrives as "_id" or "id", so both
// are accepted on decode.
type Item struct {
	ID          string  `json:"_id,omitempty"`
	AltID       string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"minStock"`
	Status      string  `json:"status"`
	Supplier    string  `json:"supplier,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// Key returns whichever identifier the server populated.
func (i Item) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.AltID
}

// ItemDraft is the payload sent on create and update. Status is filled in by
// the form from quantity and minStock at submit time; the server stores it as
// given.
type ItemDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	MinStock    int     `json:"minStock"`
	Supplier    string  `json:"supplier"`
	Status      string  `json:"status"`
	Image       string  `json:"image,omitempty"`
}

// Item statuses.
const (
	StatusInStock    = "in-stock"
	StatusLowStock   = "low-stock"
	StatusOutOfStock = "out-of-stock"
)

// Categories is the enumerated set of product categories.
var Categories = []string{"Electronics", "Accessories", "Cables", "Tools", "Other"}

// ValidCategory reports whether category is one of the enumerated set.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidStatus reports whether status is a known item status.
func ValidStatus(status string) bool {
	return status == StatusInStock || status == StatusLowStock || status == StatusOutOfStock
}

// DeriveStatus computes an item's status from its stock level. The result is
// stored on the item at write time, not recomputed on read.
func DeriveStatus(quantity, minStock int) string {
	switch {
	case quantity == 0:
		return StatusOutOfStock
	case quantity <= minStock:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// StatusName returns the display label for a status.
func StatusName(status string) string {
	switch status {
	case StatusInStock:
		return "In Stock"
	case StatusLowStock:
		return "Low Stock"
	case StatusOutOfStock:
		return "Out of Stock"
	default:
		return status
	}
}
