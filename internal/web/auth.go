package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/konzola/internal/auth"
	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/imaging"
	"github.com/erazemk/konzola/internal/view"
)

type signInForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signUpForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Company  string `validate:"omitempty"`
	Password string `validate:"required,min=6"`
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Sign In", Theme: s.Theme.Mode()})
}

// LoginSubmit handles POST /login.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	form := signInForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	fail := func(message string) {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Sign In",
			Theme: s.Theme.Mode(),
			Error: message,
		})
	}

	if err := s.validate.Struct(form); err != nil {
		fail("Enter a valid email address and password.")
		return
	}

	s.Session.LoginStart()
	result, err := s.Backend.SignIn(r.Context(), form.Email, form.Password)
	if err != nil {
		s.Session.LoginFailure()
		fail(displayError(err))
		return
	}
	s.Session.LoginSuccess(r.Context(), result.User, result.Token)

	token, err := auth.GenerateToken(s.JWTSecret,
		result.User.Key(), result.User.Name, result.User.Email, result.Token)
	if err != nil {
		slog.Error("failed to mint session token", "error", err)
		fail("Sign in failed, please try again.")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	})

	slog.Info("user signed in", "email", result.User.Email)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SignupPage handles GET /signup.
func (s *Server) SignupPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "signup.html", &PageData{Title: "Create Account", Theme: s.Theme.Mode()})
}

// SignupSubmit handles POST /signup.
func (s *Server) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	form := signUpForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Company:  r.FormValue("company"),
		Password: r.FormValue("password"),
	}

	fail := func(message string) {
		s.Templates.Render(w, "signup.html", &PageData{
			Title: "Create Account",
			Theme: s.Theme.Mode(),
			Error: message,
		})
	}

	if err := s.validate.Struct(form); err != nil {
		fail("Fill in all fields; the password needs at least 6 characters.")
		return
	}

	message, err := s.Backend.SignUp(r.Context(), backend.SignUpRequest{
		Name:     form.Name,
		Email:    form.Email,
		Company:  form.Company,
		Password: form.Password,
	})
	if err != nil {
		fail(displayError(err))
		return
	}
	if message == "" {
		message = "Account created, you can sign in now."
	}

	slog.Info("user signed up", "email", form.Email)
	s.Templates.Render(w, "login.html", &PageData{
		Title:   "Sign In",
		Theme:   s.Theme.Mode(),
		Success: message,
	})
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	s.Session.Logout(r.Context())
	clearAuthCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// displayError turns a failure into user-visible text. Validation and
// request errors already carry display-ready messages; anything else gets a
// generic fallback.
func displayError(err error) string {
	var verr *view.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	if errors.Is(err, imaging.ErrTooLarge) {
		return "File size must be less than 5MB"
	}
	var reqErr *backend.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return "Something went wrong, please try again."
}
