package gorm

import (
	"context"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// CreateNote implements port.NoteStore.
func (s *Store) CreateNote(ctx context.Context, ownerID model.UserID, title string, content string) (model.Note, error) {
	note := &Note{
		ID:      string(model.NewNoteID()),
		OwnerID: string(ownerID),
		Title:   title,
		Content: content,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(note).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{note}, nil
}

// QueryNotes implements port.NoteStore.
func (s *Store) QueryNotes(ctx context.Context, ownerID model.UserID, opts port.QueryNotesOptions) ([]model.Note, int64, error) {
	var (
		notes []*Note
		total int64
	)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Model(&Note{}).Where("owner_id = ?", string(ownerID))

		if err := query.Count(&total).Error; err != nil {
			return errors.WithStack(err)
		}

		// Newest first; the id breaks created_at ties so that pages
		// stay disjoint
		query = query.Order("created_at DESC, id DESC")

		if opts.Limit != nil {
			query = query.Limit(*opts.Limit)

			if opts.Page != nil && *opts.Page > 1 {
				query = query.Offset((*opts.Page - 1) * *opts.Limit)
			}
		}

		if err := query.Find(&notes).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	wrappedNotes := make([]model.Note, 0, len(notes))
	for _, n := range notes {
		wrappedNotes = append(wrappedNotes, &wrappedNote{n})
	}

	return wrappedNotes, total, nil
}

// UpdateNote implements port.NoteStore.
func (s *Store) UpdateNote(ctx context.Context, ownerID model.UserID, noteID model.NoteID, changes port.NoteChanges) (model.Note, error) {
	var note Note

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			err := tx.First(&note, "id = ? AND owner_id = ?", string(noteID), string(ownerID)).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errors.WithStack(port.ErrNotFound)
				}

				return errors.WithStack(err)
			}

			if changes.Title != nil {
				note.Title = *changes.Title
			}

			if changes.Content != nil {
				note.Content = *changes.Content
			}

			if err := tx.Save(&note).Error; err != nil {
				return errors.WithStack(err)
			}

			return nil
		})
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedNote{&note}, nil
}

// DeleteNote implements port.NoteStore.
func (s *Store) DeleteNote(ctx context.Context, ownerID model.UserID, noteID model.NoteID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Note{}, "id = ? AND owner_id = ?", string(noteID), string(ownerID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		if result.RowsAffected == 0 {
			return errors.WithStack(port.ErrNotFound)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteAllNotes implements port.NoteStore.
func (s *Store) DeleteAllNotes(ctx context.Context) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("1 = 1").Delete(&Note{}).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.NoteStore = &Store{}
