// Package view implements the inventory list view's data-flow core: the
// fetch/filter/paginate/mutate cycle, the add/edit form, and the dialog
// models. It renders nothing itself; the web layer reads its state.
package view

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/export"
	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/paginate"
	"github.com/erazemk/konzola/internal/state"
)

// ItemsPerPage is the fixed list page size.
const ItemsPerPage = 10

// InventoryClient is the slice of the backend client the list view uses.
type InventoryClient interface {
	ListItems(ctx context.Context, q backend.ListQuery) (*backend.ListResult, error)
	CreateItem(ctx context.Context, draft model.ItemDraft) (*model.Item, error)
	UpdateItem(ctx context.Context, id string, draft model.ItemDraft) (*model.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// ListView owns the product table state: the loaded page, pagination info and
// the in-flight flag. Mutations go through the client and are followed by a
// re-fetch of the current page; there is no optimistic local patch.
type ListView struct {
	client  InventoryClient
	filters *state.FilterStore

	mu         sync.Mutex
	fetchSeq   uint64
	items      []model.Item
	total      int
	totalPages int
	loading    bool
}

// NewListView creates a list view over the given client and filter store.
func NewListView(client InventoryClient, filters *state.FilterStore) *ListView {
	return &ListView{client: client, filters: filters, totalPages: 1}
}

// Refresh fetches the page selected by the filter store. Each call gets a
// monotonically increasing sequence number; a response that is no longer the
// latest issued is discarded, so rapid filter changes cannot let a stale page
// overwrite a fresher one.
func (v *ListView) Refresh(ctx context.Context) error {
	f := v.filters.Snapshot()

	v.mu.Lock()
	v.fetchSeq++
	seq := v.fetchSeq
	v.loading = true
	v.mu.Unlock()

	result, err := v.client.ListItems(ctx, backend.ListQuery{
		Page:     f.CurrentPage,
		Limit:    ItemsPerPage,
		Search:   f.SearchQuery,
		Category: f.CategoryFilter,
		Status:   f.StatusFilter,
	})

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.fetchSeq {
		// A newer fetch has been issued; this response is stale.
		return nil
	}
	v.loading = false

	if err != nil {
		return err
	}

	v.items = result.Items
	v.total = result.Total
	v.totalPages = result.Pages
	if v.totalPages < 1 {
		v.totalPages = 1
	}
	return nil
}

// Search sets the search text (returning to page 1) and re-fetches.
func (v *ListView) Search(ctx context.Context, query string) error {
	v.filters.SetSearch(query)
	return v.Refresh(ctx)
}

// FilterCategory sets the category filter (returning to page 1) and
// re-fetches.
func (v *ListView) FilterCategory(ctx context.Context, category string) error {
	v.filters.SetCategory(category)
	return v.Refresh(ctx)
}

// FilterStatus sets the status filter (returning to page 1) and re-fetches.
func (v *ListView) FilterStatus(ctx context.Context, status string) error {
	v.filters.SetStatus(status)
	return v.Refresh(ctx)
}

// GoToPage moves to the given page and re-fetches.
func (v *ListView) GoToPage(ctx context.Context, page int) error {
	v.filters.SetPage(page)
	return v.Refresh(ctx)
}

// ClearFilters resets all filters and re-fetches the first page.
func (v *ListView) ClearFilters(ctx context.Context) error {
	v.filters.Reset()
	return v.Refresh(ctx)
}

// Submit validates the form, sends the create or update, and on success
// re-fetches the current page. Validation failures stop the flow before any
// network call.
func (v *ListView) Submit(ctx context.Context, form *ItemForm) error {
	draft, err := form.Draft()
	if err != nil {
		return err
	}

	form.submitting = true
	defer func() { form.submitting = false }()

	if form.Editing() {
		_, err = v.client.UpdateItem(ctx, form.ItemID(), draft)
	} else {
		_, err = v.client.CreateItem(ctx, draft)
	}
	if err != nil {
		return err
	}

	return v.Refresh(ctx)
}

// Delete asks confirm before doing anything. Declined, it performs no network
// call and no state change. Confirmed, it issues exactly one delete followed
// by one re-fetch of the current page.
func (v *ListView) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm == nil || !confirm() {
		return nil
	}
	if err := v.client.DeleteItem(ctx, id); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// ExportPDF writes a report of the currently loaded page (not the full
// filtered set) to w.
func (v *ListView) ExportPDF(w io.Writer, now time.Time) error {
	return export.PDF(w, v.Items(), now)
}

// ExportXLSX writes a spreadsheet of the currently loaded page to w.
func (v *ListView) ExportXLSX(w io.Writer) error {
	return export.XLSX(w, v.Items())
}

// Items returns the currently loaded page.
func (v *ListView) Items() []model.Item {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.items
}

// Total returns the total item count across all pages.
func (v *ListView) Total() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.total
}

// TotalPages returns the page count from the last completed fetch.
func (v *ListView) TotalPages() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.totalPages
}

// Loading reports whether a fetch is in flight.
func (v *ListView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Markers returns the pagination display sequence for the current position.
func (v *ListView) Markers() []paginate.Marker {
	return paginate.Pages(v.filters.Snapshot().CurrentPage, v.TotalPages())
}
