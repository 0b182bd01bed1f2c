package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func sendJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", " ")

	if err := encoder.Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "could not encode response", slogx.Error(errors.WithStack(err)))
	}
}

// sendError writes the single-message error envelope.
func sendError(w http.ResponseWriter, r *http.Request, status int, message string) {
	sendJSON(w, r, status, map[string]string{"error": message})
}

// sendErrors writes the validation error envelope.
func sendErrors(w http.ResponseWriter, r *http.Request, status int, errs []string) {
	sendJSON(w, r, status, map[string][]string{"errors": errs})
}

func handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	sendError(w, r, http.StatusUnauthorized, "Unauthorized")
}

func getQueryPage(query url.Values, defaultValue int) int {
	return getQueryInt(query, "page", defaultValue)
}

func getQueryPerPage(query url.Values, defaultValue int) int {
	return getQueryInt(query, "per_page", defaultValue)
}

func getQueryInt(query url.Values, name string, defaultValue int) int {
	raw := query.Get(name)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return defaultValue
	}

	return int(value)
}
