package web

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/storage"
	webembed "github.com/erazemk/konzola/web"
)

// Deps are the wired dependencies the router needs.
type Deps struct {
	Backend        *backend.Client
	Storage        *storage.Store
	Session        *state.SessionStore
	Theme          *state.ThemeStore
	Filters        *state.FilterStore
	JWTSecret      string
	MetricsEnabled bool
}

// NewRouter creates the console router with all page routes registered.
func NewRouter(deps Deps) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Backend:   deps.Backend,
		Storage:   deps.Storage,
		Session:   deps.Session,
		Theme:     deps.Theme,
		Filters:   deps.Filters,
		Templates: templates,
		JWTSecret: deps.JWTSecret,
		validate:  validator.New(),
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(deps.JWTSecret)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("GET /signup", s.SignupPage)
	mux.HandleFunc("POST /signup", s.SignupSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.ItemsPage)))
	mux.Handle("GET /dashboard", cookieAuth(http.HandlerFunc(s.DashboardPage)))
	mux.Handle("POST /items", cookieAuth(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("POST /items/{id}", cookieAuth(http.HandlerFunc(s.ItemUpdateSubmit)))
	mux.Handle("POST /items/{id}/delete", cookieAuth(http.HandlerFunc(s.ItemDeleteSubmit)))
	mux.Handle("GET /items/export.pdf", cookieAuth(http.HandlerFunc(s.ExportPDF)))
	mux.Handle("GET /items/export.xlsx", cookieAuth(http.HandlerFunc(s.ExportXLSX)))

	mux.Handle("GET /settings", cookieAuth(http.HandlerFunc(s.SettingsPage)))
	mux.Handle("POST /settings/theme", cookieAuth(http.HandlerFunc(s.ThemeSubmit)))
	mux.Handle("POST /settings/profile", cookieAuth(http.HandlerFunc(s.ProfileSubmit)))

	if deps.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	return MetricsMiddleware(mux), nil
}
