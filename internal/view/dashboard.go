package view

import (
	"context"

	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/model"
)

// dashboardSample caps how much of the catalog the overview fetches to
// compute its figures from. TotalItems still reflects the server's count.
const dashboardSample = 1000

// Stats are the overview's headline figures.
type Stats struct {
	TotalItems int
	InStock    int
	LowStock   int
	OutOfStock int
	Alerts     int
	TotalValue float64
}

// Dashboard is the overview page model: headline figures plus the recent
// products and restock shortlists.
type Dashboard struct {
	Stats   Stats
	Recent  []model.Item
	Restock []model.Item
}

// LoadDashboard fetches the catalog, up to the sample cap, and computes the
// overview from it.
func LoadDashboard(ctx context.Context, client InventoryClient) (*Dashboard, error) {
	result, err := client.ListItems(ctx, backend.ListQuery{Page: 1, Limit: dashboardSample})
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Stats:   ComputeStats(result.Items, result.Total),
		Recent:  headOf(result.Items, 5),
		Restock: headOf(filterStatus(result.Items, model.StatusLowStock), 5),
	}, nil
}

// ComputeStats tallies status counts and total stock value over the fetched
// items. The item count comes from the server total, not the sample length.
func ComputeStats(items []model.Item, total int) Stats {
	s := Stats{TotalItems: total}
	for _, item := range items {
		switch item.Status {
		case model.StatusInStock:
			s.InStock++
		case model.StatusLowStock:
			s.LowStock++
		case model.StatusOutOfStock:
			s.OutOfStock++
		}
		s.TotalValue += item.Price * float64(item.Quantity)
	}
	s.Alerts = s.LowStock + s.OutOfStock
	return s
}

func filterStatus(items []model.Item, status string) []model.Item {
	var filtered []model.Item
	for _, item := range items {
		if item.Status == status {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func headOf(items []model.Item, n int) []model.Item {
	if len(items) > n {
		return items[:n]
	}
	return items
}
