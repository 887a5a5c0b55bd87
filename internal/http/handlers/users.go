package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lamontana/storefront/internal/auth"
	"github.com/lamontana/storefront/internal/core"
)

// AuthHandler serves the public signup and login routes.
type AuthHandler struct {
	Svc core.UserService
	Log *slog.Logger
}

func NewAuthHandler(svc core.UserService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Log: log}
}

func (h *AuthHandler) Mount(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
	})
}

// Signup creates an account.
// 201: profile; 400: validation; 409: email taken.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in core.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	u, err := h.Svc.Signup(r.Context(), in)
	if err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	writeJSON(w, h.Log, http.StatusCreated, u)
}

// Login exchanges credentials for a bearer token.
// 200: session; 401: bad credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in core.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	session, err := h.Svc.Login(r.Context(), in)
	if err != nil {
		writeError(w, r, h.Log, err, "Invalid email or password.")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, session)
}

// ProfileHandler serves /me for the signed-in user.
type ProfileHandler struct {
	Svc core.UserService
	Log *slog.Logger
}

func NewProfileHandler(svc core.UserService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Log: log}
}

func (h *ProfileHandler) Mount(r chi.Router) {
	r.Route("/me", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Patch("/", h.Patch)
		r.Post("/password", h.ChangePassword)
	})
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in first.")
		return
	}
	u, err := h.Svc.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.Log, err, "Failed to load profile")
		return
	}
	writeJSON(w, h.Log, http.StatusOK, u)
}

// Patch merges the given fields into the profile.
// 200: profile; 400: nothing to update.
func (h *ProfileHandler) Patch(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in first.")
		return
	}
	var patch core.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		badJSON(w, r)
		return
	}
	u, err := h.Svc.UpdateProfile(r.Context(), userID, patch)
	if err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	writeJSON(w, h.Log, http.StatusOK, u)
}

// ChangePassword re-checks the current password before storing the new one.
// 204 on success; 400: too short; 401: wrong current password.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := auth.MustUserID(r.Context())
	if err != nil {
		writeError(w, r, h.Log, err, "Sign in first.")
		return
	}
	var in core.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badJSON(w, r)
		return
	}
	if err := h.Svc.ChangePassword(r.Context(), userID, in); err != nil {
		writeError(w, r, h.Log, err, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
