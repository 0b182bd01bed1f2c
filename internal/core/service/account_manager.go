package service

import (
	"context"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/port"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AccountManager handles credential hashing and verification on top of
// the user store.
type AccountManager struct {
	users port.UserStore
}

// Signup creates a new user with a bcrypt-hashed password, or returns
// ErrUsernameTaken if the username is already registered.
func (m *AccountManager) Signup(ctx context.Context, username string, password string) (model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	user, err := m.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		if errors.Is(err, port.ErrAlreadyExists) {
			return nil, errors.WithStack(ErrUsernameTaken)
		}

		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair. Unknown usernames and
// password mismatches are indistinguishable to the caller.
func (m *AccountManager) Authenticate(ctx context.Context, username string, password string) (model.User, error) {
	user, err := m.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, errors.WithStack(ErrInvalidCredentials)
		}

		return nil, errors.WithStack(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash()), []byte(password)); err != nil {
		return nil, errors.WithStack(ErrInvalidCredentials)
	}

	return user, nil
}

func NewAccountManager(users port.UserStore) *AccountManager {
	return &AccountManager{users: users}
}
