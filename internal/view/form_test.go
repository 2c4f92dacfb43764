package view

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
	"time"

	"github.com/erazemk/konzola/internal/imaging"
	"github.com/erazemk/konzola/internal/model"
)

func createTestJPEG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func fixedNow() time.Time {
	// UnixMilli ends in 457.
	return time.UnixMilli(1735689600457)
}

func TestValidationOrder(t *testing.T) {
	// Everything invalid at once: failures must surface in display order.
	form := NewItemForm()
	steps := []struct {
		fix  func()
		want string
	}{
		{func() { form.Name = "Widget" }, "Product name is required"},
		{func() { form.SKU = "WID-001" }, "SKU is required"},
		{func() { form.Category = "Tools" }, "Category is required"},
		{func() { form.Price = "9.99" }, "Valid price is required"},
		{func() { form.Quantity = "3" }, "Valid quantity is required"},
		{func() { form.MinStock = "1" }, "Valid minimum stock is required"},
	}
	for _, step := range steps {
		verr := form.Validate()
		if verr == nil {
			t.Fatalf("expected failure before %q was fixed", step.want)
		}
		if verr.Message != step.want {
			t.Fatalf("expected %q next, got %q", step.want, verr.Message)
		}
		step.fix()
	}
	if verr := form.Validate(); verr != nil {
		t.Fatalf("expected valid form, got %v", verr)
	}
}

func TestValidationRejectsBadNumbers(t *testing.T) {
	valid := func() *ItemForm {
		return &ItemForm{Name: "Widget", SKU: "WID", Category: "Tools", Price: "5", Quantity: "1", MinStock: "0"}
	}

	form := valid()
	form.Price = "0"
	if verr := form.Validate(); verr == nil || verr.Field != "price" {
		t.Errorf("zero price should fail, got %v", verr)
	}
	form = valid()
	form.Price = "abc"
	if verr := form.Validate(); verr == nil || verr.Field != "price" {
		t.Errorf("non-numeric price should fail, got %v", verr)
	}
	form = valid()
	form.Quantity = "-1"
	if verr := form.Validate(); verr == nil || verr.Field != "quantity" {
		t.Errorf("negative quantity should fail, got %v", verr)
	}
	form = valid()
	form.MinStock = "2.5"
	if verr := form.Validate(); verr == nil || verr.Field != "minStock" {
		t.Errorf("fractional minStock should fail, got %v", verr)
	}
	form = valid()
	form.Category = "Furniture"
	if verr := form.Validate(); verr == nil || verr.Field != "category" {
		t.Errorf("unknown category should fail, got %v", verr)
	}
	form = valid()
	form.Name = "   "
	if verr := form.Validate(); verr == nil || verr.Field != "name" {
		t.Errorf("whitespace name should fail, got %v", verr)
	}
}

func TestSuggestSKU(t *testing.T) {
	got := SuggestSKU("USB-C Hub 2000", fixedNow())
	if got != "USB-457" {
		t.Errorf("SuggestSKU = %q, want USB-457", got)
	}

	// Shorter than three usable characters.
	if got := SuggestSKU("é!", fixedNow()); got != "-457" {
		t.Errorf("SuggestSKU on symbols = %q", got)
	}
	if got := SuggestSKU("ab", fixedNow()); got != "AB-457" {
		t.Errorf("SuggestSKU = %q, want AB-457", got)
	}
}

func TestSKUSuggestionLifecycle(t *testing.T) {
	form := NewItemForm()
	form.now = fixedNow

	form.SetName("Widget")
	if form.SKU != "WID-457" {
		t.Fatalf("expected suggestion, got %q", form.SKU)
	}

	// The filled field blocks re-suggestion on further name edits.
	form.SetName("Gadget")
	if form.SKU != "WID-457" {
		t.Errorf("suggestion must not overwrite a filled SKU, got %q", form.SKU)
	}

	// Clearing a never-typed SKU re-enables the suggestion.
	form.SetSKU("")
	form.SetName("Gadget Pro")
	if form.SKU != "GAD-457" {
		t.Errorf("expected fresh suggestion, got %q", form.SKU)
	}

	// A user-typed value disables it permanently.
	form.SetSKU("MY-SKU")
	form.SetSKU("")
	for _, name := range []string{"Cable", "Adapter", "Charger"} {
		form.SetName(name)
		if form.SKU != "" {
			t.Fatalf("suggestion fired after user typed a SKU: %q", form.SKU)
		}
	}
}

func TestNoSuggestionInEditMode(t *testing.T) {
	form := NewEditForm(model.Item{ID: "1", Name: "Widget", SKU: ""})
	form.now = fixedNow
	form.SetName("Renamed")
	if form.SKU != "" {
		t.Errorf("edit mode must not suggest SKUs, got %q", form.SKU)
	}
}

func TestDraftDerivesStatus(t *testing.T) {
	form := &ItemForm{
		Name: " Widget ", SKU: "wid-001", Category: "Tools",
		Price: "9.99", Quantity: "0", MinStock: "5",
		Supplier: " Acme ", now: time.Now,
	}
	draft, err := form.Draft()
	if err != nil {
		t.Fatalf("Draft: %v", err)
	}
	if draft.Status != model.StatusOutOfStock {
		t.Errorf("status = %q, want out-of-stock", draft.Status)
	}
	if draft.Name != "Widget" || draft.Supplier != "Acme" {
		t.Errorf("fields not trimmed: %+v", draft)
	}
	if draft.SKU != "WID-001" {
		t.Errorf("SKU not uppercased: %q", draft.SKU)
	}

	form.Quantity = "5"
	draft, _ = form.Draft()
	if draft.Status != model.StatusLowStock {
		t.Errorf("status = %q, want low-stock", draft.Status)
	}

	form.Quantity = "6"
	draft, _ = form.Draft()
	if draft.Status != model.StatusInStock {
		t.Errorf("status = %q, want in-stock", draft.Status)
	}
}

func TestAttachImageOversizeLeavesPreview(t *testing.T) {
	form := NewItemForm()
	form.imagePreview = "data:image/jpeg;base64,existing"

	big := bytes.NewReader(make([]byte, imaging.MaxUploadSize+1))
	err := form.AttachImage(big)
	if !errors.Is(err, imaging.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if form.Image() != "data:image/jpeg;base64,existing" {
		t.Error("failed upload must not change the preview")
	}

	form.RemoveImage()
	if form.Image() != "" {
		t.Error("RemoveImage must clear the preview")
	}
}

func TestAttachImageAccepted(t *testing.T) {
	form := NewItemForm()
	if err := form.AttachImage(bytes.NewReader(createTestJPEG(40, 40))); err != nil {
		t.Fatalf("AttachImage: %v", err)
	}
	if !strings.HasPrefix(form.Image(), "data:image/jpeg;base64,") {
		t.Errorf("expected data URI preview, got %q", form.Image())
	}
}
