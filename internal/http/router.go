package transporthttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/swaggo/swag"

	"github.com/lamontana/storefront/internal/http/handlers"
	"github.com/lamontana/storefront/internal/middleware"
	"github.com/lamontana/storefront/pkg/problem"
)

// Deps bundles what the router needs. Public routes need no token, Private
// routes need a bearer token, Admin routes need the admin API key and
// Uploads are public routes that accept large multipart bodies.
type Deps struct {
	Log            *slog.Logger
	Health         handlers.Mountable
	Tokens         middleware.TokenParser
	Limiter        middleware.Limiter
	AdminAPIKey    string
	AllowedOrigins []string
	RequestTimeout time.Duration

	Public  []handlers.Mountable
	Uploads []handlers.Mountable
	Private []handlers.Mountable
	Admin   []handlers.Mountable
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(d.AllowedOrigins))
	if d.Limiter != nil {
		r.Use(middleware.RateLimit(d.Limiter, d.Log))
	}
	if d.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.RequestTimeout))
	}

	if d.Health != nil {
		d.Health.Mount(r)
	}
	r.Get("/swagger/doc.json", swaggerDoc)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		problem.WriteFor(w, r, http.StatusNotFound, "Not Found", "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		problem.WriteFor(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" is not supported here")
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
			mountAll(r, d.Public)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.LimitRequestBody(middleware.MaxDocumentSize))
			mountAll(r, d.Uploads)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
			r.Use(middleware.RequireUser(d.Tokens))
			mountAll(r, d.Private)
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.LimitRequestBody(middleware.MaxBodySize))
			r.Use(middleware.AdminAPIKey(d.AdminAPIKey))
			mountAll(r, d.Admin)
		})
	})

	return r
}

func mountAll(r chi.Router, ms []handlers.Mountable) {
	for _, m := range ms {
		m.Mount(r)
	}
}

func swaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		problem.WriteFor(w, r, http.StatusInternalServerError, "Internal Server Error", "API document unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}
