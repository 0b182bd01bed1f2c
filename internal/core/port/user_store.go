package port

import (
	"context"

	"github.com/bornholm/notes/internal/core/model"
)

type UserStore interface {
	// CreateUser creates a new User with the given username and password
	// hash, or returns ErrAlreadyExists if the username is taken
	CreateUser(ctx context.Context, username string, passwordHash string) (model.User, error)

	// GetUserByID finds a user by its ID, or returns ErrNotFound if not found
	GetUserByID(ctx context.Context, userID model.UserID) (model.User, error)

	// GetUserByUsername finds a user by its unique username, or returns
	// ErrNotFound if not found
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	// DeleteAllUsers removes every user and, by cascade, their notes
	DeleteAllUsers(ctx context.Context) error
}
