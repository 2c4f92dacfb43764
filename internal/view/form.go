package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/erazemk/konzola/internal/imaging"
	"github.com/erazemk/konzola/internal/model"
)

// ValidationError is a client-side rejection: it blocks submission before any
// network call and is shown to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ItemForm is the add/edit dialog state. All inputs are kept as strings the
// way the user typed them; parsing happens during validation.
type ItemForm struct {
	Name        string
	Description string
	SKU         string
	Category    string
	Price       string
	Quantity    string
	MinStock    string
	Supplier    string

	editing      bool
	itemID       string
	imagePreview string
	skuTouched   bool
	submitting   bool

	now func() time.Time
}

// NewItemForm creates an empty form in create mode.
func NewItemForm() *ItemForm {
	return &ItemForm{now: time.Now}
}

// NewEditForm creates a form prefilled from an existing item.
func NewEditForm(item model.Item) *ItemForm {
	return &ItemForm{
		Name:         item.Name,
		Description:  item.Description,
		SKU:          item.SKU,
		Category:     item.Category,
		Price:        strconv.FormatFloat(item.Price, 'f', -1, 64),
		Quantity:     strconv.Itoa(item.Quantity),
		MinStock:     strconv.Itoa(item.MinStock),
		Supplier:     item.Supplier,
		editing:      true,
		itemID:       item.Key(),
		imagePreview: item.Image,
		now:          time.Now,
	}
}

// Editing reports whether the form updates an existing item.
func (f *ItemForm) Editing() bool { return f.editing }

// Submitting reports whether the form's request is in flight, so the
// triggering control can be disabled.
func (f *ItemForm) Submitting() bool { return f.submitting }

// ItemID returns the id of the item being edited.
func (f *ItemForm) ItemID() string { return f.itemID }

// Image returns the current image reference: a preview data URI, the kept
// server path, or empty.
func (f *ItemForm) Image() string { return f.imagePreview }

// SetName updates the name. In create mode, while the SKU field is still
// empty and the user has never typed one, a SKU is suggested from the name.
func (f *ItemForm) SetName(name string) {
	f.Name = name
	if !f.editing && !f.skuTouched && f.SKU == "" && name != "" {
		f.SKU = SuggestSKU(name, f.now())
	}
}

// SetSKU records a user-typed SKU. Any non-empty value permanently disables
// the auto-suggestion; clearing an auto-filled value re-enables it.
func (f *ItemForm) SetSKU(sku string) {
	f.SKU = sku
	if strings.TrimSpace(sku) != "" {
		f.skuTouched = true
	}
}

// SuggestSKU derives a SKU from a product name: uppercase, strip everything
// non-alphanumeric, first three characters, plus the last three digits of the
// current timestamp.
func SuggestSKU(name string, now time.Time) string {
	var cleaned strings.Builder
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			cleaned.WriteRune(r)
		}
	}
	prefix := cleaned.String()
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%03d", prefix, now.UnixMilli()%1000)
}

// AttachImage reads a single uploaded file into the preview. Files over the
// size cap (or in an unsupported format) are rejected with a user-visible
// error and the previous preview is kept.
func (f *ItemForm) AttachImage(r io.Reader) error {
	preview, err := imaging.Preview(r)
	if err != nil {
		return err
	}
	f.imagePreview = preview
	return nil
}

// RemoveImage clears the preview.
func (f *ItemForm) RemoveImage() { f.imagePreview = "" }

// Validate checks the form in display order and returns the first failure.
// Nothing may be submitted while this returns non-nil.
func (f *ItemForm) Validate() *ValidationError {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "Product name is required"}
	}
	if strings.TrimSpace(f.SKU) == "" {
		return &ValidationError{Field: "sku", Message: "SKU is required"}
	}
	if !model.ValidCategory(f.Category) {
		return &ValidationError{Field: "category", Message: "Category is required"}
	}
	if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		return &ValidationError{Field: "price", Message: "Valid price is required"}
	}
	if quantity, err := strconv.Atoi(f.Quantity); err != nil || quantity < 0 {
		return &ValidationError{Field: "quantity", Message: "Valid quantity is required"}
	}
	if minStock, err := strconv.Atoi(f.MinStock); err != nil || minStock < 0 {
		return &ValidationError{Field: "minStock", Message: "Valid minimum stock is required"}
	}
	return nil
}

// Draft validates the form and builds the outgoing payload. The status is
// derived from quantity and minStock here, at write time, and stored as part
// of the item.
func (f *ItemForm) Draft() (model.ItemDraft, error) {
	if verr := f.Validate(); verr != nil {
		return model.ItemDraft{}, verr
	}

	price, _ := strconv.ParseFloat(f.Price, 64)
	quantity, _ := strconv.Atoi(f.Quantity)
	minStock, _ := strconv.Atoi(f.MinStock)

	return model.ItemDraft{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		SKU:         strings.ToUpper(strings.TrimSpace(f.SKU)),
		Category:    f.Category,
		Price:       price,
		Quantity:    quantity,
		MinStock:    minStock,
		Supplier:    strings.TrimSpace(f.Supplier),
		Status:      model.DeriveStatus(quantity, minStock),
		Image:       f.imagePreview,
	}, nil
}
