package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/service"
	httpCtx "github.com/bornholm/notes/internal/http/context"
	"github.com/bornholm/notes/internal/metrics"
)

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func toUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:       string(user.ID()),
		Username: user.Username(),
	}
}

type SignupRequest struct {
	Username             string  `json:"username"`
	Password             string  `json:"password"`
	PasswordConfirmation *string `json:"password_confirmation"`
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)

	var validationErrors []string
	if req.Username == "" {
		validationErrors = append(validationErrors, "Username is required.")
	}
	if req.Password == "" {
		validationErrors = append(validationErrors, "Password is required.")
	}
	if req.PasswordConfirmation != nil && *req.PasswordConfirmation != req.Password {
		validationErrors = append(validationErrors, "Passwords do not match.")
	}

	if len(validationErrors) > 0 {
		sendErrors(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	user, err := h.accounts.Signup(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) {
			sendError(w, r, http.StatusConflict, "Username already taken.")
			return
		}

		slog.ErrorContext(ctx, "could not sign up user", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if err := h.sessions.StoreUserID(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	metrics.TotalSignups.Inc()

	sendJSON(w, r, http.StatusCreated, toUserResponse(user))
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	// Missing fields read as invalid credentials
	user, err := h.accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			sendError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		slog.ErrorContext(ctx, "could not authenticate user", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if err := h.sessions.StoreUserID(w, r, user.ID()); err != nil {
		slog.ErrorContext(ctx, "could not store session user", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	metrics.TotalLogins.Inc()

	sendJSON(w, r, http.StatusOK, toUserResponse(user))
}

func (h *Handler) handleCheckSession(w http.ResponseWriter, r *http.Request) {
	user := httpCtx.User(r.Context())
	if user == nil {
		// The frontend expects an empty object, not a 401
		sendJSON(w, r, http.StatusOK, struct{}{})
		return
	}

	sendJSON(w, r, http.StatusOK, toUserResponse(user))
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.Clear(w, r); err != nil {
		slog.ErrorContext(ctx, "could not clear session", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
