package api

import (
	"net/http"

	"github.com/bornholm/notes/internal/core/port"
	"github.com/bornholm/notes/internal/core/service"
	"github.com/bornholm/notes/internal/http/middleware/authn/session"
	"github.com/bornholm/notes/internal/http/middleware/authz"
)

type Handler struct {
	accounts *service.AccountManager
	notes    port.NoteStore
	sessions *session.Authenticator
	mux      *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(accounts *service.AccountManager, notes port.NoteStore, sessions *session.Authenticator) *Handler {
	h := &Handler{
		accounts: accounts,
		notes:    notes,
		sessions: sessions,
		mux:      &http.ServeMux{},
	}

	assertUser := authz.Middleware(http.HandlerFunc(handleUnauthorized), authz.IsAuthenticated)

	h.mux.HandleFunc("GET /{$}", h.handleIndex)

	h.mux.HandleFunc("POST /signup", h.handleSignup)
	h.mux.HandleFunc("POST /login", h.handleLogin)
	h.mux.HandleFunc("GET /check_session", h.handleCheckSession)
	h.mux.HandleFunc("DELETE /logout", h.handleLogout)

	h.mux.Handle("GET /notes", assertUser(http.HandlerFunc(h.handleListNotes)))
	h.mux.Handle("POST /notes", assertUser(http.HandlerFunc(h.handleCreateNote)))
	h.mux.Handle("PATCH /notes/{noteID}", assertUser(http.HandlerFunc(h.handleUpdateNote)))
	h.mux.Handle("DELETE /notes/{noteID}", assertUser(http.HandlerFunc(h.handleDeleteNote)))

	return h
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, r, http.StatusOK, map[string]string{"message": "API is running"})
}

var _ http.Handler = &Handler{}
