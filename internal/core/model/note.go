package model

import (
	"github.com/rs/xid"
)

type NoteID string

func NewNoteID() NoteID {
	return NoteID(xid.New().String())
}

// Note is a user-owned record. Every note has exactly one owner and is
// only reachable through requests authenticated as that owner.
type Note interface {
	WithID[NoteID]
	WithLifecycle
	OwnerID() UserID
	Title() string
	Content() string
}
