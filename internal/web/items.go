package web

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/erazemk/konzola/internal/export"
	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/paginate"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/view"
)

// itemsPageData is the full render model for the product table page.
type itemsPageData struct {
	PageData
	Items      []model.Item
	Total      int
	TotalPages int
	Markers    []paginate.Marker
	Filters    state.Filters
	Categories []string
	Statuses   []string
	Dialog     view.Dialog
}

// itemsData builds the table page's render model from the view's current
// state.
func (s *Server) itemsData(r *http.Request, lv *view.ListView) *itemsPageData {
	return &itemsPageData{
		PageData:   s.base(r, "Inventory"),
		Items:      lv.Items(),
		Total:      lv.Total(),
		TotalPages: lv.TotalPages(),
		Markers:    lv.Markers(),
		Filters:    s.Filters.Snapshot(),
		Categories: model.Categories,
		Statuses:   []string{model.StatusInStock, model.StatusLowStock, model.StatusOutOfStock},
		Dialog:     view.NoDialog(),
	}
}

// listView builds the list view for this request's session.
func (s *Server) listView(r *http.Request) *view.ListView {
	client := s.Backend.WithToken(backendToken(r.Context()))
	return view.NewListView(client, s.Filters)
}

// applyFilters maps the request's query parameters onto the filter store.
// Changing a filter returns to page 1, so the page parameter applies last.
func (s *Server) applyFilters(r *http.Request) {
	q := r.URL.Query()
	current := s.Filters.Snapshot()

	if q.Has("search") && q.Get("search") != current.SearchQuery {
		s.Filters.SetSearch(q.Get("search"))
	}
	if q.Has("category") && q.Get("category") != current.CategoryFilter {
		s.Filters.SetCategory(q.Get("category"))
	}
	if q.Has("status") && q.Get("status") != current.StatusFilter {
		s.Filters.SetStatus(q.Get("status"))
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		s.Filters.SetPage(page)
	}
}

// ItemsPage handles GET /. It applies the query's filters, fetches the
// selected page and renders the table with whichever dialog is open.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	s.applyFilters(r)

	lv := s.listView(r)
	data := s.itemsData(r, lv)

	if err := lv.Refresh(r.Context()); err != nil {
		slog.Error("failed to fetch inventory", "error", err)
		data.Error = displayError(err)
	}

	data.Items = lv.Items()
	data.Total = lv.Total()
	data.TotalPages = lv.TotalPages()
	data.Markers = lv.Markers()

	q := r.URL.Query()
	switch {
	case q.Get("add") == "1":
		data.Dialog = view.AddItemDialog()
	case q.Get("edit") != "":
		for _, item := range data.Items {
			if item.Key() == q.Get("edit") {
				data.Dialog = view.EditItemDialog(item)
				break
			}
		}
	case q.Get("bulk") != "":
		data.Dialog = view.BulkActionDialog(view.BulkKind(q.Get("bulk")))
	}

	s.Templates.Render(w, "items.html", data)
}

// formFromRequest rebuilds the dialog form from the submitted values. The
// SKU is applied before the name so an auto-suggestion only fires when the
// user left the field empty.
func (s *Server) formFromRequest(r *http.Request, editID string) (*view.ItemForm, error) {
	var form *view.ItemForm
	if editID != "" {
		form = view.NewEditForm(model.Item{ID: editID, Image: r.FormValue("current_image")})
	} else {
		form = view.NewItemForm()
	}

	form.SetSKU(r.FormValue("sku"))
	form.SetName(r.FormValue("name"))
	form.Description = r.FormValue("description")
	form.Category = r.FormValue("category")
	form.Price = r.FormValue("price")
	form.Quantity = r.FormValue("quantity")
	form.MinStock = r.FormValue("min_stock")
	form.Supplier = r.FormValue("supplier")

	if r.FormValue("remove_image") == "1" {
		form.RemoveImage()
	}

	file, _, err := r.FormFile("image")
	if err == nil {
		defer file.Close()
		if err := form.AttachImage(file); err != nil {
			return form, err
		}
	}

	return form, nil
}

// submitItem runs a create or update and re-renders the page with the dialog
// open when anything fails.
func (s *Server) submitItem(w http.ResponseWriter, r *http.Request, editID string) {
	r.Body = http.MaxBytesReader(w, r.Body, 6<<20)
	if err := r.ParseMultipartForm(6 << 20); err != nil {
		http.Error(w, "upload too large", http.StatusBadRequest)
		return
	}

	form, err := s.formFromRequest(r, editID)
	if err == nil {
		err = s.listView(r).Submit(r.Context(), form)
	}
	if err != nil {
		slog.Warn("item submit rejected", "error", err)
		s.renderItemsWithDialog(w, r, form, displayError(err))
		return
	}

	if editID != "" {
		slog.Info("item updated", "id", editID, "name", form.Name)
	} else {
		slog.Info("item created", "name", form.Name, "sku", form.SKU)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// renderItemsWithDialog re-renders the table with the given form still open.
func (s *Server) renderItemsWithDialog(w http.ResponseWriter, r *http.Request, form *view.ItemForm, message string) {
	lv := s.listView(r)
	if err := lv.Refresh(r.Context()); err != nil {
		slog.Error("failed to fetch inventory", "error", err)
	}

	kind := view.DialogAddItem
	if form.Editing() {
		kind = view.DialogEditItem
	}

	data := s.itemsData(r, lv)
	data.Dialog = view.Dialog{Kind: kind, Form: form}
	data.Error = message
	s.Templates.Render(w, "items.html", data)
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	s.submitItem(w, r, "")
}

// ItemUpdateSubmit handles POST /items/{id}.
func (s *Server) ItemUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	s.submitItem(w, r, r.PathValue("id"))
}

// ItemDeleteSubmit handles POST /items/{id}/delete. The delete only runs
// when the form carries the confirmation value; without it nothing happens.
func (s *Server) ItemDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	confirmed := r.FormValue("confirm") == "yes"

	err := s.listView(r).Delete(r.Context(), id, func() bool { return confirmed })
	if err != nil {
		slog.Error("failed to delete item", "id", id, "error", err)
	} else if confirmed {
		slog.Info("item deleted", "id", id)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// serveExport fetches the current page and runs build into a buffer. The
// attachment headers are only set once the document exists; an empty page
// generates no file and re-renders the table with the message instead.
func (s *Server) serveExport(w http.ResponseWriter, r *http.Request, contentType, filename string, build func(lv *view.ListView, buf *bytes.Buffer) error) {
	lv := s.listView(r)
	if err := lv.Refresh(r.Context()); err != nil {
		slog.Error("failed to fetch inventory for export", "error", err)
		http.Error(w, displayError(err), http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := build(lv, &buf); err != nil {
		if errors.Is(err, export.ErrNoItems) {
			data := s.itemsData(r, lv)
			data.Error = "No products to export."
			s.Templates.Render(w, "items.html", data)
			return
		}
		slog.Error("failed to build export", "filename", filename, "error", err)
		http.Error(w, "failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write export response", "error", err)
	}
}

// ExportPDF handles GET /items/export.pdf, a report of the current page.
func (s *Server) ExportPDF(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	s.serveExport(w, r, "application/pdf", export.Filename("pdf", now),
		func(lv *view.ListView, buf *bytes.Buffer) error {
			return lv.ExportPDF(buf, now)
		})
}

// ExportXLSX handles GET /items/export.xlsx.
func (s *Server) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	s.serveExport(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.Filename("xlsx", time.Now()),
		func(lv *view.ListView, buf *bytes.Buffer) error {
			return lv.ExportXLSX(buf)
		})
}
