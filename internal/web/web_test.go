package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/erazemk/konzola/internal/auth"
	"github.com/erazemk/konzola/internal/backend"
	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/state"
	"github.com/erazemk/konzola/internal/storage"
)

const testSecret = "test-secret"

// fakeInventory is a stand-in for the remote inventory service.
type fakeInventory struct {
	mu      sync.Mutex
	deleted []string
	empty   bool
}

func (f *fakeInventory) setEmpty(empty bool) {
	f.mu.Lock()
	f.empty = empty
	f.mu.Unlock()
}

func (f *fakeInventory) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["email"] != "ana@example.com" || creds["password"] != "pw" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(backend.SignInResult{
			User:  model.User{ID: "u1", Name: "Ana", Email: "ana@example.com"},
			Token: "api-token",
		})
	})

	mux.HandleFunc("GET /api/inventory", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		empty := f.empty
		f.mu.Unlock()
		if empty {
			json.NewEncoder(w).Encode(backend.ListResult{Pages: 1})
			return
		}
		json.NewEncoder(w).Encode(backend.ListResult{
			Items: []model.Item{
				{ID: "1", Name: "USB Cable", SKU: "USB-001", Category: "Cables",
					Price: 450, Quantity: 12, MinStock: 5, Status: model.StatusInStock},
			},
			Total: 1,
			Pages: 1,
		})
	})

	mux.HandleFunc("DELETE /api/inventory/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.deleted = append(f.deleted, r.PathValue("id"))
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	return mux
}

func (f *fakeInventory) deleteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.deleted)
}

func newTestConsole(t *testing.T) (*httptest.Server, *fakeInventory, *storage.Store) {
	t.Helper()

	inventory := &fakeInventory{}
	remote := httptest.NewServer(inventory.handler())
	t.Cleanup(remote.Close)

	store := storage.NewTestStore(t)

	router, err := NewRouter(Deps{
		Backend:   backend.New(remote.URL),
		Storage:   store,
		Session:   state.NewSessionStore(store),
		Theme:     state.NewThemeStore(state.ThemeLight),
		Filters:   state.NewFilterStore(),
		JWTSecret: testSecret,
	})
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}

	console := httptest.NewServer(router)
	t.Cleanup(console.Close)
	return console, inventory, store
}

// noRedirect stops the test client from following redirects so they can be
// asserted on.
func noRedirect() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, "u1", "Ana", "ana@example.com", "api-token")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return &http.Cookie{Name: "token", Value: token}
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	console, _, _ := newTestConsole(t)

	resp, err := noRedirect().Get(console.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Errorf("redirect target = %q, want /login", loc)
	}
}

func TestLoginSetsCookie(t *testing.T) {
	console, _, _ := newTestConsole(t)

	resp, err := noRedirect().PostForm(console.URL+"/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"pw"},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", resp.StatusCode)
	}

	var token string
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" {
			token = cookie.Value
		}
	}
	if token == "" {
		t.Fatal("no session cookie set")
	}

	claims, err := auth.ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("cookie does not validate: %v", err)
	}
	if claims.Email != "ana@example.com" || claims.BackendToken != "api-token" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectedShowsServerMessage(t *testing.T) {
	console, _, _ := newTestConsole(t)

	resp, err := http.PostForm(console.URL+"/login", url.Values{
		"email":    {"ana@example.com"},
		"password": {"wrong"},
	})
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "invalid credentials") {
		t.Error("server error message not shown on the login page")
	}
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "token" && cookie.Value != "" {
			t.Error("failed login must not set a session cookie")
		}
	}
}

func TestItemsPageRendersInventory(t *testing.T) {
	console, _, _ := newTestConsole(t)

	req, _ := http.NewRequest(http.MethodGet, console.URL+"/", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "USB Cable") {
		t.Error("item name missing from the rendered page")
	}
	if !strings.Contains(string(body), "USB-001") {
		t.Error("item SKU missing from the rendered page")
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	console, inventory, _ := newTestConsole(t)
	client := noRedirect()

	send := func(values url.Values) {
		req, _ := http.NewRequest(http.MethodPost, console.URL+"/items/1/delete",
			strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie(t))
		resp, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
	}

	send(url.Values{})
	if inventory.deleteCount() != 0 {
		t.Fatal("unconfirmed delete reached the inventory service")
	}

	send(url.Values{"confirm": {"yes"}})
	if inventory.deleteCount() != 1 {
		t.Fatalf("confirmed delete count = %d, want 1", inventory.deleteCount())
	}
}

// postItemForm submits the add-item dialog as the browser would, with a
// multipart body.
func postItemForm(t *testing.T, console *httptest.Server, fields map[string]string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, value := range fields {
		mw.WriteField(name, value)
	}
	mw.Close()

	req, _ := http.NewRequest(http.MethodPost, console.URL+"/items", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.AddCookie(sessionCookie(t))

	resp, err := noRedirect().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestSubmitMissingNameShowsFieldError(t *testing.T) {
	console, _, _ := newTestConsole(t)

	resp := postItemForm(t, console, map[string]string{
		"name": "", "sku": "", "category": "Cables",
		"price": "100", "quantity": "1", "min_stock": "1",
	})
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Product name is required") {
		t.Error("field error message not shown on the items page")
	}
	if strings.Contains(string(body), "Something went wrong") {
		t.Error("field error replaced by the generic failure message")
	}
}

func TestExportEmptyInventoryShowsMessage(t *testing.T) {
	console, inventory, _ := newTestConsole(t)
	inventory.setEmpty(true)

	req, _ := http.NewRequest(http.MethodGet, console.URL+"/items/export.pdf", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		t.Errorf("empty export must not trigger a download, got %q", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "No products to export.") {
		t.Error("empty export message not shown on the items page")
	}
}

func TestExportPDFDownloadsAttachment(t *testing.T) {
	console, _, _ := newTestConsole(t)

	req, _ := http.NewRequest(http.MethodGet, console.URL+"/items/export.pdf", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "inventory-report") {
		t.Errorf("Content-Disposition = %q, want an inventory-report attachment", cd)
	}
	body, _ := io.ReadAll(resp.Body)
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("response body is not a PDF document")
	}
}

func TestDashboardShowsStats(t *testing.T) {
	console, _, _ := newTestConsole(t)

	req, _ := http.NewRequest(http.MethodGet, console.URL+"/dashboard", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Total Products") {
		t.Error("stat cards missing from the dashboard")
	}
	if !strings.Contains(string(body), "USB Cable") {
		t.Error("recent products list missing from the dashboard")
	}
}

func TestThemeRedirectStaysOnSite(t *testing.T) {
	console, _, _ := newTestConsole(t)

	send := func(target string) string {
		req, _ := http.NewRequest(http.MethodPost, console.URL+"/settings/theme",
			strings.NewReader(url.Values{"redirect": {target}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(sessionCookie(t))
		resp, err := noRedirect().Do(req)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		return resp.Header.Get("Location")
	}

	if loc := send("//evil.example"); loc != "/settings" {
		t.Errorf("protocol-relative redirect = %q, want /settings", loc)
	}
	if loc := send("https://evil.example"); loc != "/settings" {
		t.Errorf("absolute redirect = %q, want /settings", loc)
	}
	if loc := send("/"); loc != "/" {
		t.Errorf("same-site redirect = %q, want /", loc)
	}
}

func TestThemeTogglePersists(t *testing.T) {
	console, _, store := newTestConsole(t)

	req, _ := http.NewRequest(http.MethodPost, console.URL+"/settings/theme", nil)
	req.AddCookie(sessionCookie(t))
	resp, err := noRedirect().Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	mode, ok, err := store.Get(context.Background(), storage.KeyTheme)
	if err != nil || !ok {
		t.Fatalf("theme not persisted: ok=%v err=%v", ok, err)
	}
	if mode != state.ThemeDark {
		t.Errorf("persisted theme = %q, want dark", mode)
	}
}
