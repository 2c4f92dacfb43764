package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/konzola/internal/auth"
	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/storage"
)

// settingsPageData is the render model for the settings page.
type settingsPageData struct {
	PageData
	Session state.Session
}

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "settings.html", &settingsPageData{
		PageData: s.base(r, "Settings"),
		Session:  s.Session.Snapshot(),
	})
}

// ThemeSubmit handles POST /settings/theme. The new mode is persisted so it
// survives restarts.
func (s *Server) ThemeSubmit(w http.ResponseWriter, r *http.Request) {
	mode := s.Theme.Toggle()
	if err := s.Storage.Set(r.Context(), storage.KeyTheme, mode); err != nil {
		slog.Error("failed to persist theme", "error", err)
	}

	// Only same-site paths: a leading "//" would be protocol-relative.
	redirect := r.FormValue("redirect")
	if !strings.HasPrefix(redirect, "/") || strings.HasPrefix(redirect, "//") {
		redirect = "/settings"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// ProfileSubmit handles POST /settings/profile. It patches the signed-in
// user's profile fields and refreshes the session cookie to match.
func (s *Server) ProfileSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	s.Session.UpdateUser(r.Context(), model.User{
		Name:    r.FormValue("name"),
		Company: r.FormValue("company"),
	})

	session := s.Session.Snapshot()
	if session.User != nil {
		token, err := auth.GenerateToken(s.JWTSecret,
			session.User.Key(), session.User.Name, session.User.Email, claims.BackendToken)
		if err != nil {
			slog.Error("failed to refresh session token", "error", err)
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     "token",
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteStrictMode,
				MaxAge:   86400,
			})
		}
	}

	slog.Info("profile updated", "user", claims.Email)
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
