package state

import "sync"

// Filters is a snapshot of the catalog query state.
type Filters struct {
	CurrentPage    int
	SearchQuery    string
	CategoryFilter string
	StatusFilter   string
}

// FilterStore holds the list view's query state. Changing any filter value
// returns the view to the first page.
type FilterStore struct {
	mu      sync.Mutex
	filters Filters
}

// NewFilterStore creates a store positioned on page 1 with no filters.
func NewFilterStore() *FilterStore {
	return &FilterStore{filters: Filters{CurrentPage: 1}}
}

// SetSearch sets the search text and resets the page to 1.
func (f *FilterStore) SetSearch(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters.SearchQuery = query
	f.filters.CurrentPage = 1
}

// SetCategory sets the category filter (empty means no filter) and resets the
// page to 1.
func (f *FilterStore) SetCategory(category string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters.CategoryFilter = category
	f.filters.CurrentPage = 1
}

// SetStatus sets the status filter (empty means no filter) and resets the
// page to 1.
func (f *FilterStore) SetStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters.StatusFilter = status
	f.filters.CurrentPage = 1
}

// SetPage moves to the given page, clamped to at least 1.
func (f *FilterStore) SetPage(page int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page < 1 {
		page = 1
	}
	f.filters.CurrentPage = page
}

// Reset clears all filters and returns to page 1.
func (f *FilterStore) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = Filters{CurrentPage: 1}
}

// Snapshot returns a copy of the current query state.
func (f *FilterStore) Snapshot() Filters {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filters
}
