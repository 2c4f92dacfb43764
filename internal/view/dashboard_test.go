package view

import (
	"context"
	"testing"

	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/model"
)

func TestComputeStats(t *testing.T) {
	items := []model.Item{
		{Name: "A", Status: model.StatusInStock, Price: 100, Quantity: 3},
		{Name: "B", Status: model.StatusInStock, Price: 50, Quantity: 2},
		{Name: "C", Status: model.StatusLowStock, Price: 10, Quantity: 1},
		{Name: "D", Status: model.StatusOutOfStock, Price: 999, Quantity: 0},
	}

	stats := ComputeStats(items, 40)
	if stats.TotalItems != 40 {
		t.Errorf("TotalItems = %d, want the server total", stats.TotalItems)
	}
	if stats.InStock != 2 || stats.LowStock != 1 || stats.OutOfStock != 1 {
		t.Errorf("status counts = %d/%d/%d", stats.InStock, stats.LowStock, stats.OutOfStock)
	}
	if stats.Alerts != 2 {
		t.Errorf("Alerts = %d, want low + out", stats.Alerts)
	}
	if stats.TotalValue != 410 {
		t.Errorf("TotalValue = %v, want 410", stats.TotalValue)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, 0)
	if stats != (Stats{}) {
		t.Errorf("empty catalog stats = %+v", stats)
	}
}

func TestLoadDashboardShortlists(t *testing.T) {
	var items []model.Item
	for i := 0; i < 8; i++ {
		items = append(items, model.Item{ID: string(rune('a' + i)), Status: model.StatusLowStock})
	}
	items = append(items, model.Item{ID: "z", Status: model.StatusInStock})

	client := &fakeClient{}
	client.listFn = func(q backend.ListQuery) (*backend.ListResult, error) {
		if q.Page != 1 || q.Limit != dashboardSample {
			t.Errorf("unexpected query: %+v", q)
		}
		return &backend.ListResult{Items: items, Total: len(items), Pages: 1}, nil
	}

	d, err := LoadDashboard(context.Background(), client)
	if err != nil {
		t.Fatalf("LoadDashboard: %v", err)
	}

	if len(d.Recent) != 5 {
		t.Errorf("Recent length = %d, want 5", len(d.Recent))
	}
	if len(d.Restock) != 5 {
		t.Errorf("Restock length = %d, want 5", len(d.Restock))
	}
	for _, item := range d.Restock {
		if item.Status != model.StatusLowStock {
			t.Errorf("restock list holds %q item %s", item.Status, item.ID)
		}
	}
	if d.Stats.Alerts != 8 {
		t.Errorf("Alerts = %d, want 8", d.Stats.Alerts)
	}
}
