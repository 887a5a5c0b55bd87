package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/internal/core"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubProducts struct{ items []core.Product }

func (s *stubProducts) List(context.Context) ([]core.Product, error) { return s.items, nil }

func (s *stubProducts) GetByName(_ context.Context, name string) (core.Product, error) {
	for _, p := range s.items {
		if p.Name == name {
			return p, nil
		}
	}
	return core.Product{}, core.ErrProductNotFound
}

func (s *stubProducts) UpsertByName(_ context.Context, p core.Product) error {
	for i := range s.items {
		if s.items[i].Name == p.Name {
			s.items[i] = p
			return nil
		}
	}
	s.items = append(s.items, p)
	return nil
}

func testCatalog() core.CatalogService {
	return core.NewCatalogService(&stubProducts{items: []core.Product{
		{Name: "Impresión B/N", Price: 100, Category: core.CategoryPrint, CopyBased: true},
		{Name: "Anillado A4", Price: 800, Category: core.CategoryBinding},
	}}, nil)
}

// asUser stands in for the bearer token middleware.
func asUser(id string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id != "" {
				r = r.WithContext(auth.WithUser(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newTestRouter(userID string, hs ...Mountable) http.Handler {
	r := chi.NewRouter()
	r.Use(asUser(userID))
	for _, h := range hs {
		h.Mount(r)
	}
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return v
}

func itemPath(name, suffix string) string {
	return "/cart/items/" + url.PathEscape(name) + suffix
}

func TestProductHandler(t *testing.T) {
	h := newTestRouter("", NewProductHandler(testCatalog(), quietLog()))

	rec := do(t, h, http.MethodGet, "/products", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if list := decode[ProductList](t, rec); list.Count != 2 {
		t.Errorf("Count = %d", list.Count)
	}

	rec = do(t, h, http.MethodGet, "/products?category=binding", "")
	if list := decode[ProductList](t, rec); list.Count != 1 || list.Items[0].Name != "Anillado A4" {
		t.Errorf("filtered list = %+v", list)
	}

	tests := []struct {
		name string
		path string
		want int
	}{
		{"unknown category", "/products?category=stickers", http.StatusBadRequest},
		{"by encoded name", "/products/" + url.PathEscape("Impresión B/N"), http.StatusOK},
		{"missing", "/products/Plastificado", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := do(t, h, http.MethodGet, tt.path, ""); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestCartHandler_Flow(t *testing.T) {
	sessions := core.NewCartSessions()
	h := newTestRouter("u1", NewCartHandler(sessions, testCatalog(), quietLog()))

	rec := do(t, h, http.MethodPost, "/cart/items", `{"name":"Impresión B/N"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("add status = %d body %s", rec.Code, rec.Body)
	}
	do(t, h, http.MethodPost, "/cart/items", `{"name":"Anillado A4"}`)
	rec = do(t, h, http.MethodPost, itemPath("Impresión B/N", ":increment"), "")
	snap := decode[core.CartSnapshot](t, rec)
	if snap.TotalQuantity != 3 || snap.TotalAmount != 1000 {
		t.Errorf("after increment: %+v", snap)
	}

	rec = do(t, h, http.MethodPut, itemPath("Anillado A4", ""), `{"quantity":4}`)
	snap = decode[core.CartSnapshot](t, rec)
	if snap.TotalAmount != 200+3200 {
		t.Errorf("after set quantity: %+v", snap)
	}

	rec = do(t, h, http.MethodPost, itemPath("Anillado A4", ":decrement"), "")
	snap = decode[core.CartSnapshot](t, rec)
	if snap.TotalQuantity != 5 {
		t.Errorf("after decrement: %+v", snap)
	}

	rec = do(t, h, http.MethodDelete, itemPath("Impresión B/N", ""), "")
	snap = decode[core.CartSnapshot](t, rec)
	if len(snap.Lines) != 1 || snap.Lines[0].Product.Name != "Anillado A4" {
		t.Errorf("after remove: %+v", snap)
	}

	if sessions.Get("u1").TotalQuantity() != 3 {
		t.Error("handler did not use the session cart")
	}

	rec = do(t, h, http.MethodDelete, "/cart", "")
	if snap := decode[core.CartSnapshot](t, rec); snap.TotalQuantity != 0 || snap.Lines == nil {
		t.Errorf("after clear: %+v", snap)
	}
}

func TestCartHandler_Errors(t *testing.T) {
	h := newTestRouter("u1", NewCartHandler(core.NewCartSessions(), testCatalog(), quietLog()))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"bad json", http.MethodPost, "/cart/items", `{`, http.StatusBadRequest},
		{"blank name", http.MethodPost, "/cart/items", `{"name":"  "}`, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/cart/items", `{"name":"Plastificado"}`, http.StatusNotFound},
		{"missing quantity", http.MethodPut, itemPath("Anillado A4", ""), `{}`, http.StatusBadRequest},
		{"remove unknown is noop", http.MethodDelete, itemPath("Plastificado", ""), "", http.StatusOK},
		{"decrement absent line", http.MethodPost, itemPath("Anillado A4", ":decrement"), "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body)
			}
		})
	}

	anon := newTestRouter("", NewCartHandler(core.NewCartSessions(), testCatalog(), quietLog()))
	if rec := do(t, anon, http.MethodGet, "/cart", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous cart status = %d", rec.Code)
	}
}

func TestShippingHandler(t *testing.T) {
	h := newTestRouter("", NewShippingHandler(quietLog()))

	tests := []struct {
		code string
		want string
		free bool
	}{
		{"1425", "eligible", true},
		{"5000", "ineligible", false},
		{"", "missing", false},
		{"12", "invalid_format", false},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/shipping/eligibility?postal_code="+tt.code, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			var body map[string]any
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body["outcome"] != tt.want || body["free_shipping"] != tt.free || body["message"] == "" {
				t.Errorf("body = %v", body)
			}
		})
	}
}

func TestCatalogAdminHandler(t *testing.T) {
	catalog := testCatalog()
	h := newTestRouter("", NewCatalogAdminHandler(catalog, quietLog()))

	rec := do(t, h, http.MethodPut, "/products/"+url.PathEscape("Plastificado A4"),
		`{"description":"Brillante","price":300,"category":"BINDING"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d body %s", rec.Code, rec.Body)
	}
	if p, err := catalog.Get(context.Background(), "Plastificado A4"); err != nil || p.Price != 300 {
		t.Errorf("upserted product: %+v %v", p, err)
	}

	rec = do(t, h, http.MethodPut, "/products/Roto", `{"price":-1,"category":"PRINT"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid product status = %d", rec.Code)
	}

	if rec := do(t, h, http.MethodPost, "/catalog:reload", ""); rec.Code != http.StatusNoContent {
		t.Errorf("reload status = %d", rec.Code)
	}
}
