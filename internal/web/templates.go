// Package web renders the console's pages. Handlers read and mutate the
// state stores, drive the list view, and render the result server-side.
package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/erazemk/konzola/internal/auth"
	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/paginate"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/storage"
	webembed "github.com/erazemk/konzola/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"statusName": model.StatusName,
		"statusClass": func(status string) string {
			switch status {
			case model.StatusInStock:
				return "status-in"
			case model.StatusLowStock:
				return "status-low"
			case model.StatusOutOfStock:
				return "status-out"
			default:
				return ""
			}
		},
		"price": func(p float64) string {
			return fmt.Sprintf("%.2f", p)
		},
		"isEllipsis": func(m paginate.Marker) bool {
			return m.IsEllipsis()
		},
		"int": func(m paginate.Marker) int { return int(m) },
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"dashboard.html",
		"signup.html",
		"items.html",
		"settings.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.Claims
	Theme   string
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Backend   *backend.Client
	Storage   *storage.Store
	Session   *state.SessionStore
	Theme     *state.ThemeStore
	Filters   *state.FilterStore
	Templates *Templates
	JWTSecret string

	validate *validator.Validate
}

// base builds the PageData shared by every page, with the current theme and
// signed-in user.
func (s *Server) base(r *http.Request, title string) PageData {
	return PageData{
		Title: title,
		User:  GetWebClaims(r.Context()),
		Theme: s.Theme.Mode(),
	}
}
