package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/pkg/problem"
)

// TokenParser verifies a bearer token and returns its claims.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// RequireUser rejects requests without a valid bearer token and stores the
// user id from the token subject on the request context.
func RequireUser(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				problem.Write(w, http.StatusUnauthorized, "Unauthorized", "Missing bearer token")
				return
			}
			claims, err := tokens.Parse(raw)
			if err != nil {
				problem.Write(w, http.StatusUnauthorized, "Unauthorized", "Invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), claims.Subject)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// AdminAPIKey guards catalog maintenance routes with a static X-API-Key.
func AdminAPIKey(apiKey string) func(http.Handler) http.Handler {
	want := []byte(apiKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("X-API-Key"))
			// Constant-time comparison
			if len(want) == 0 || subtle.ConstantTimeCompare(got, want) != 1 {
				problem.Write(w, http.StatusUnauthorized, "Unauthorized", "Invalid or missing API key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
