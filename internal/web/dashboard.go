package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/konzola/internal/view"
)

// dashboardPageData is the render model for the overview page.
type dashboardPageData struct {
	PageData
	Dashboard *view.Dashboard
}

// DashboardPage handles GET /dashboard: headline figures, stock alerts and
// the recent/restock shortlists, computed from a fresh catalog fetch.
func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	client := s.Backend.WithToken(backendToken(r.Context()))

	data := &dashboardPageData{PageData: s.base(r, "Dashboard")}

	dashboard, err := view.LoadDashboard(r.Context(), client)
	if err != nil {
		slog.Error("failed to load dashboard", "error", err)
		data.Error = displayError(err)
		dashboard = &view.Dashboard{}
	}
	data.Dashboard = dashboard

	s.Templates.Render(w, "dashboard.html", data)
}
