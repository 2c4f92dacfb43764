package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/erazemk/konzola/internal/model"
)

// ListQuery selects a page of the catalog. Zero-valued fields are omitted
// from the request entirely so the server default (no filter) applies.
type ListQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Status   string
}

// ListResult is one page of the catalog.
type ListResult struct {
	Items []model.Item `json:"items"`
	Total int          `json:"total"`
	Pages int          `json:"pages"`
}

// ListItems fetches a page of items.
func (c *Client) ListItems(ctx context.Context, q ListQuery) (*ListResult, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}

	path := "/api/inventory"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result ListResult
	if err := c.do(ctx, "list", http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateItem creates a catalog item from a draft.
func (c *Client) CreateItem(ctx context.Context, draft model.ItemDraft) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, "create", http.MethodPost, "/api/inventory", draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces the item with the given id.
func (c *Client) UpdateItem(ctx context.Context, id string, draft model.ItemDraft) (*model.Item, error) {
	var item model.Item
	if err := c.do(ctx, "update", http.MethodPut, "/api/inventory/"+url.PathEscape(id), draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem deletes the item with the given id. Callers must have obtained
// explicit user confirmation first.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, "delete", http.MethodDelete, "/api/inventory/"+url.PathEscape(id), nil, nil)
}
