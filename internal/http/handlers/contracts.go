package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/core"
)

type Mountable interface {
	Mount(r chi.Router)
}

// ListResponse is the envelope for paginated collections.
type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type ProductList struct {
	Items []core.Product `json:"items"`
	Count int            `json:"count"`
}

type AddToCartRequest struct {
	Name string `json:"name"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

type ShippingResponse struct {
	PostalCode   string               `json:"postal_code"`
	Outcome      core.ShippingOutcome `json:"outcome"`
	FreeShipping bool                 `json:"free_shipping"`
	Message      string               `json:"message"`
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

// nameParam returns the decoded product name from the path. Names such as
// "Copia B/N" arrive percent-encoded.
func nameParam(r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return "", false
	}
	return name, true
}

// pageParams reads limit/offset; the service clamps them.
func pageParams(r *http.Request) (limit, offset int) {
	q := r.URL.Query()
	if l, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = l
	}
	if o, err := strconv.Atoi(q.Get("offset")); err == nil {
		offset = o
	}
	return limit, offset
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
