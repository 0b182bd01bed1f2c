package gorm

import (
	"time"

	"github.com/bornholm/notes/internal/core/model"
)

type Note struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Title   string
	Content string
}

type wrappedNote struct {
	n *Note
}

// ID implements model.Note.
func (w *wrappedNote) ID() model.NoteID {
	return model.NoteID(w.n.ID)
}

// OwnerID implements model.Note.
func (w *wrappedNote) OwnerID() model.UserID {
	return model.UserID(w.n.OwnerID)
}

// Title implements model.Note.
func (w *wrappedNote) Title() string {
	return w.n.Title
}

// Content implements model.Note.
func (w *wrappedNote) Content() string {
	return w.n.Content
}

// CreatedAt implements model.Note.
func (w *wrappedNote) CreatedAt() time.Time {
	return w.n.CreatedAt
}

// UpdatedAt implements model.Note.
func (w *wrappedNote) UpdatedAt() time.Time {
	return w.n.UpdatedAt
}

var _ model.Note = &wrappedNote{}
