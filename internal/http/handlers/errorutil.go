package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lamontana/storefront/internal/core"
	"github.com/lamontana/storefront/pkg/problem"
)

// writeError maps domain sentinels to problem responses. Client errors are
// logged at warn, everything else at error.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, detail string) {
	ctx := r.Context()
	switch {
	case errors.Is(err, core.ErrNotFound):
		log.WarnContext(ctx, "resource not found", "err", err)
		problem.WriteFor(w, r, http.StatusNotFound, "Not Found", detail)

	case errors.Is(err, core.ErrValidation), errors.Is(err, core.ErrInvalidArgument):
		log.WarnContext(ctx, "validation failed", "err", err)
		problem.WriteFor(w, r, http.StatusBadRequest, "Validation Error", detail)

	case errors.Is(err, core.ErrConflict):
		log.WarnContext(ctx, "resource conflict", "err", err)
		problem.WriteFor(w, r, http.StatusConflict, "Conflict", detail)

	case errors.Is(err, core.ErrUnauthorized):
		log.WarnContext(ctx, "unauthorized request", "err", err)
		problem.WriteFor(w, r, http.StatusUnauthorized, "Unauthorized", detail)

	case errors.Is(err, core.ErrForbidden):
		log.WarnContext(ctx, "forbidden operation", "err", err)
		problem.WriteFor(w, r, http.StatusForbidden, "Forbidden", detail)

	case errors.Is(err, context.DeadlineExceeded):
		log.ErrorContext(ctx, "operation timeout", "err", err)
		problem.WriteFor(w, r, http.StatusGatewayTimeout, "Timeout", "Operation took too long.")

	default:
		log.ErrorContext(ctx, "internal server error", "err", err)
		problem.WriteFor(w, r, http.StatusInternalServerError, "Internal Server Error", "Something went wrong.")
	}
}

func badJSON(w http.ResponseWriter, r *http.Request) {
	problem.WriteFor(w, r, http.StatusBadRequest, "Invalid JSON", "Body could not be decoded.")
}
