package cache

import (
	"context"
	"time"

	"github.com/bornholm/notes/internal/core/model"
	"github.com/bornholm/notes/internal/core/port"
)

// UserStore caches user lookups in front of another store, so that the
// per-request session resolution does not hit the database every time.
type UserStore struct {
	backend   port.UserStore
	userCache *MultiIndexCache[*CacheableUser]
}

// CreateUser implements [port.UserStore].
func (s *UserStore) CreateUser(ctx context.Context, username string, passwordHash string) (model.User, error) {
	defer s.userCache.Remove(getUsernameCacheKey(username))

	return s.backend.CreateUser(ctx, username, passwordHash)
}

// GetUserByID implements [port.UserStore].
func (s *UserStore) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	if user, exists := s.userCache.Get(string(userID)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// GetUserByUsername implements [port.UserStore].
func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	if user, exists := s.userCache.Get(getUsernameCacheKey(username)); exists {
		return user, nil
	}

	user, err := s.backend.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.userCache.Add(NewCacheableUser(user))

	return user, nil
}

// DeleteAllUsers implements [port.UserStore].
func (s *UserStore) DeleteAllUsers(ctx context.Context) error {
	defer s.userCache.Purge()

	return s.backend.DeleteAllUsers(ctx)
}

func NewUserStore(backend port.UserStore, size int, ttl time.Duration) *UserStore {
	return &UserStore{
		backend:   backend,
		userCache: NewMultiIndexCache[*CacheableUser](size, ttl),
	}
}

var _ port.UserStore = &UserStore{}
