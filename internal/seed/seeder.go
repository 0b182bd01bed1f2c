package seed

import (
	"context"
	"log/slog"

	"github.com/bornholm/notes/internal/core/port"
	"github.com/bornholm/notes/internal/core/service"
	"github.com/pkg/errors"
)

// Seeder resets the database then recreates the fixture users and
// their notes through the regular account and note flows.
type Seeder struct {
	accounts *service.AccountManager
	users    port.UserStore
	notes    port.NoteStore
}

func (s *Seeder) Apply(ctx context.Context, fixtures *Fixtures) error {
	if err := s.notes.DeleteAllNotes(ctx); err != nil {
		return errors.WithStack(err)
	}

	if err := s.users.DeleteAllUsers(ctx); err != nil {
		return errors.WithStack(err)
	}

	for _, u := range fixtures.Users {
		user, err := s.accounts.Signup(ctx, u.Username, u.Password)
		if err != nil {
			return errors.Wrapf(err, "could not create user '%s'", u.Username)
		}

		for _, n := range u.Notes {
			if _, err := s.notes.CreateNote(ctx, user.ID(), n.Title, n.Content); err != nil {
				return errors.Wrapf(err, "could not create note '%s' for user '%s'", n.Title, u.Username)
			}
		}

		slog.InfoContext(ctx, "seeded user", slog.String("username", u.Username), slog.Int("notes", len(u.Notes)))
	}

	return nil
}

func NewSeeder(accounts *service.AccountManager, users port.UserStore, notes port.NoteStore) *Seeder {
	return &Seeder{
		accounts: accounts,
		users:    users,
		notes:    notes,
	}
}
