package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler serves liveness on /health and readiness on /readyz. Readiness
// fails when any named dependency does not answer within opTimeout.
type Handler struct {
	log       *slog.Logger
	deps      map[string]Pinger
	opTimeout time.Duration
}

func New(log *slog.Logger, deps map[string]Pinger, opTimeout time.Duration) *Handler {
	return &Handler{log: log, deps: deps, opTimeout: opTimeout}
}

func (h *Handler) Mount(r chi.Router) {
	r.Get("/health", h.live)
	r.Get("/readyz", h.ready)
}

func (h *Handler) live(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.opTimeout)
	defer cancel()

	var errs []error
	for name, p := range h.deps {
		if err := p.Ping(ctx); err != nil {
			h.log.Warn("readiness failed", "dependency", name, "err", err)
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		http.Error(w, "not ready", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
