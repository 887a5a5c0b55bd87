package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/pkg/problem"
)

type OrderHandler struct {
	Svc      core.CheckoutService
	Sessions *core.CartSessions
	Log      *slog.Logger
}

func NewOrderHandler(svc core.CheckoutService, sessions *core.CartSessions, log *slog.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Sessions: sessions, Log: log}
}

func (h *OrderHandler) Mount(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/by-number/{number}", h.GetByNumber)
		r.Get("/{order_id}", h.Get)
	})
}

// Create checks out the user's cart.
// 201: order; 400: empty cart/bad JSON; 401: no user; 500: internal error.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in to place an order.")
		return
	}

	var in core.CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}

	order, err := h.Svc.PlaceOrder(r.Context(), userID, h.Sessions.Get(userID), in)
	if err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}

	h.Log.InfoContext(r.Context(), "order placed",
		"order", order.Number, "total", order.Total, "shipping", order.Shipping.Outcome.String())
	w.Header().Set("Location", "/api/v1/orders/"+order.ID)
	writeJSON(w, h.Log, http.StatusCreated, order)
}

// Get returns one of the user's orders.
// 200: JSON; 404: not found or not owned.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in to see orders.")
		return
	}
	id := chi.URLParam(r, "order_id")
	if id == "" {
		problem.WriteFor(w, r, http.StatusBadRequest, "Missing Order ID", "Path parameter order_id is required.")
		return
	}

	order, err := h.Svc.Get(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to get order")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, order)
}

// GetByNumber looks up one of the user's orders by its ORD-YYYY-NNNNNN number.
// 200: JSON; 404: not found or not owned.
func (h *OrderHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in to see orders.")
		return
	}

	order, err := h.Svc.GetByNumber(r.Context(), userID, chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to get order")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, order)
}

// List returns the user's orders, newest first, with limit/offset paging.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in to see orders.")
		return
	}
	limit, offset := clampPage(pageParams(r))

	orders, total, err := h.Svc.List(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []core.Order{}
	}
	writeJSON(w, h.Log, http.StatusOK, ListResponse[core.Order]{
		Items:  orders,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}
