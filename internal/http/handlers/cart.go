package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/pkg/problem"
)

// CartHandler serves the signed-in user's cart. Products are always resolved
// through the catalog so clients cannot set prices.
type CartHandler struct {
	Sessions *core.CartSessions
	Catalog  core.CatalogService
	Log      *slog.Logger
}

func NewCartHandler(sessions *core.CartSessions, catalog core.CatalogService, log *slog.Logger) *CartHandler {
	return &CartHandler{Sessions: sessions, Catalog: catalog, Log: log}
}

func (h *CartHandler) Mount(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.Add)
		r.Post("/items/{name}:increment", h.Increment)
		r.Post("/items/{name}:decrement", h.Decrement)
		r.Put("/items/{name}", h.SetQuantity)
		r.Delete("/items/{name}", h.Remove)
	})
}

func (h *CartHandler) cart(w http.ResponseWriter, r *http.Request) (*core.Cart, bool) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in to use the cart.")
		return nil, false
	}
	return h.Sessions.Get(userID), true
}

func (h *CartHandler) product(w http.ResponseWriter, r *http.Request, name string) (*core.Product, bool) {
	if strings.TrimSpace(name) == "" {
		problem.WriteFor(w, r, http.StatusBadRequest, "Validation Error", "product name is required")
		return nil, false
	}
	p, err := h.Catalog.Get(r.Context(), name)
	if err != nil {
		writeError(w, r, h.Log, err, "Product not found")
		return nil, false
	}
	return &p, true
}

func (h *CartHandler) respond(w http.ResponseWriter, cart *core.Cart) {
	writeJSON(w, h.Log, http.StatusOK, cart.Snapshot())
}

// Get returns items with both totals.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	h.respond(w, cart)
}

// Add puts one unit of the named product in the cart.
// 200: cart; 400: bad JSON/missing name; 404: unknown product.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	var in AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	p, ok := h.product(w, r, in.Name)
	if !ok {
		return
	}
	if err := cart.Add(p); err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	h.respond(w, cart)
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*core.Cart).Increment)
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, (*core.Cart).Decrement)
}

func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, op func(*core.Cart, *core.Product) error) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	name, ok := nameParam(r)
	if !ok {
		problem.WriteFor(w, r, http.StatusBadRequest, "Missing Product Name", "Path parameter name is required.")
		return
	}
	p, ok := h.product(w, r, name)
	if !ok {
		return
	}
	if err := op(cart, p); err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	h.respond(w, cart)
}

// SetQuantity overwrites the quantity; 0 or less removes the line.
// 200: cart; 400: missing quantity; 404: unknown product.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var in SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	if in.Quantity == nil {
		problem.WriteFor(w, r, http.StatusBadRequest, "Validation Error", "quantity is required")
		return
	}
	h.mutate(w, r, func(c *core.Cart, p *core.Product) error {
		return c.SetQuantity(p, *in.Quantity)
	})
}

// Remove drops the line for the named product. Unknown names are a no-op so
// a product that left the catalog can still be removed.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	name, ok := nameParam(r)
	if !ok {
		problem.WriteFor(w, r, http.StatusBadRequest, "Missing Product Name", "Path parameter name is required.")
		return
	}
	for _, line := range cart.Items() {
		if line.Product.Name == strings.TrimSpace(name) {
			p := line.Product
			cart.Remove(&p)
			break
		}
	}
	h.respond(w, cart)
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	cart.Clear()
	h.respond(w, cart)
}
