package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/pkg/problem"
)

type ProductHandler struct {
	Catalog core.CatalogService
	Log     *slog.Logger
}

func NewProductHandler(catalog core.CatalogService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{Catalog: catalog, Log: log}
}

func (h *ProductHandler) Mount(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{name}", h.Get)
	})
}

// List returns the catalog, optionally filtered by ?category=PRINT|BINDING.
// 200: JSON; 400: unknown category; 500: internal error.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var category *core.Category
	if c := r.URL.Query().Get("category"); c != "" {
		parsed, err := core.ParseCategory(c)
		if err != nil {
			writeError(w, r, h.Log, err, err.Error())
			return
		}
		category = &parsed
	}

	products, err := h.Catalog.List(r.Context(), category)
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to list products")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, ProductList{Items: products, Count: len(products)})
}

// Get returns one product by name.
// 200: JSON; 404: not found.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, ok := nameParam(r)
	if !ok {
		problem.WriteFor(w, r, http.StatusBadRequest, "Missing Product Name", "Path parameter name is required.")
		return
	}

	p, err := h.Catalog.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, h.Log, err, "Product not found")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, p)
}

// CatalogAdminHandler exposes catalog maintenance behind the admin API key.
type CatalogAdminHandler struct {
	Catalog core.CatalogService
	Log     *slog.Logger
}

func NewCatalogAdminHandler(catalog core.CatalogService, log *slog.Logger) *CatalogAdminHandler {
	return &CatalogAdminHandler{Catalog: catalog, Log: log}
}

func (h *CatalogAdminHandler) Mount(r chi.Router) {
	r.Post("/catalog:reload", h.Reload)
	r.Put("/products/{name}", h.Upsert)
}

// Reload refetches the catalog from the store.
// 204 on success.
func (h *CatalogAdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.Reload(r.Context()); err != nil {
		writeError(w, r, h.Log, err, "Failed to reload catalog")
		return
	}
	h.Log.InfoContext(r.Context(), "catalog reloaded")
	w.WriteHeader(http.StatusNoContent)
}

// Upsert creates or replaces the product named in the path.
// 200: JSON; 400: bad JSON/validation.
func (h *CatalogAdminHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	name, ok := nameParam(r)
	if !ok {
		problem.WriteFor(w, r, http.StatusBadRequest, "Missing Product Name", "Path parameter name is required.")
		return
	}

	var in core.Product
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	in.Name = name

	p, err := h.Catalog.Upsert(r.Context(), in)
	if err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	writeJSON(w, h.Log, http.StatusOK, p)
}
