package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/port"
	httpCtx "github.com/bornholm/notes/internal/http/context"
	"github.com/bornholm/notes/internal/metrics"
)

const (
	defaultPerPage = 10
	maxPerPage     = 50
)

type NoteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    string    `json:"user_id"`
}

func toNoteResponse(note model.Note) NoteResponse {
	return NoteResponse{
		ID:        string(note.ID()),
		Title:     note.Title(),
		Content:   note.Content(),
		CreatedAt: note.CreatedAt(),
		UpdatedAt: note.UpdatedAt(),
		UserID:    string(note.OwnerID()),
	}
}

type ListNotesResponse struct {
	Items   []NoteResponse `json:"items"`
	Page    int            `json:"page"`
	PerPage int            `json:"per_page"`
	Total   int64          `json:"total"`
	Pages   int            `json:"pages"`
}

func (h *Handler) handleListNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	query := r.URL.Query()

	page := getQueryPage(query, 1)
	if page < 1 {
		page = 1
	}

	perPage := getQueryPerPage(query, defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	notes, total, err := h.notes.QueryNotes(ctx, user.ID(), port.QueryNotesOptions{
		Page:  &page,
		Limit: &perPage,
	})
	if err != nil {
		slog.ErrorContext(ctx, "could not query notes", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	res := ListNotesResponse{
		Items:   make([]NoteResponse, 0, len(notes)),
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   int((total + int64(perPage) - 1) / int64(perPage)),
	}

	for _, n := range notes {
		res.Items = append(res.Items, toNoteResponse(n))
	}

	sendJSON(w, r, http.StatusOK, res)
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (h *Handler) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)

	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	var validationErrors []string
	if req.Title == "" {
		validationErrors = append(validationErrors, "Title is required.")
	}
	if req.Content == "" {
		validationErrors = append(validationErrors, "Content is required.")
	}

	if len(validationErrors) > 0 {
		sendErrors(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	note, err := h.notes.CreateNote(ctx, user.ID(), req.Title, req.Content)
	if err != nil {
		slog.ErrorContext(ctx, "could not create note", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	metrics.TotalCreatedNotes.Inc()

	sendJSON(w, r, http.StatusCreated, toNoteResponse(note))
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (h *Handler) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, r, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	changes := port.NoteChanges{}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		changes.Title = &title
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		changes.Content = &content
	}

	note, err := h.notes.UpdateNote(ctx, user.ID(), noteID, changes)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "Note not found")
			return
		}

		slog.ErrorContext(ctx, "could not update note", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	metrics.TotalUpdatedNotes.Inc()

	sendJSON(w, r, http.StatusOK, toNoteResponse(note))
}

func (h *Handler) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user := httpCtx.User(ctx)
	noteID := model.NoteID(r.PathValue("noteID"))

	if err := h.notes.DeleteNote(ctx, user.ID(), noteID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			sendError(w, r, http.StatusNotFound, "Note not found")
			return
		}

		slog.ErrorContext(ctx, "could not delete note", slogx.Error(errors.WithStack(err)))
		sendError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	metrics.TotalDeletedNotes.Inc()

	w.WriteHeader(http.StatusNoContent)
}
