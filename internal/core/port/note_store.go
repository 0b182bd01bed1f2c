package port

import (
	"context"

	"github.com/bornholm/notes/internal/core/model"
)

type QueryNotesOptions struct {
	// 1-based page index
	Page  *int
	Limit *int
}

// NoteChanges is a partial update of a note; nil fields are left untouched.
type NoteChanges struct {
	Title   *string
	Content *string
}

type NoteStore interface {
	// CreateNote creates a new Note owned by the given user
	CreateNote(ctx context.Context, ownerID model.UserID, title string, content string) (model.Note, error)

	// QueryNotes returns the notes owned by the given user, newest first,
	// with the total number of owned notes
	QueryNotes(ctx context.Context, ownerID model.UserID, opts QueryNotesOptions) ([]model.Note, int64, error)

	// UpdateNote applies the given changes to a note, or returns
	// ErrNotFound if the note does not exist or is not owned by ownerID
	UpdateNote(ctx context.Context, ownerID model.UserID, noteID model.NoteID, changes NoteChanges) (model.Note, error)

	// DeleteNote removes a note, or returns ErrNotFound if the note does
	// not exist or is not owned by ownerID
	DeleteNote(ctx context.Context, ownerID model.UserID, noteID model.NoteID) error

	// DeleteAllNotes removes every note
	DeleteAllNotes(ctx context.Context) error
}
