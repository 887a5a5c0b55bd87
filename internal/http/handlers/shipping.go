package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/core"
)

type ShippingHandler struct {
	Log *slog.Logger
}

func NewShippingHandler(log *slog.Logger) *ShippingHandler {
	return &ShippingHandler{Log: log}
}

func (h *ShippingHandler) Mount(r chi.Router) {
	r.Get("/shipping/eligibility", h.Eligibility)
}

// Eligibility classifies ?postal_code=. Bad input is an outcome, so this
// always answers 200.
func (h *ShippingHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("postal_code")
	outcome := core.ClassifyPostalCode(code)
	writeJSON(w, h.Log, http.StatusOK, ShippingResponse{
		PostalCode:   code,
		Outcome:      outcome,
		FreeShipping: outcome == core.ShippingEligible,
		Message:      outcome.Message(),
	})
}
