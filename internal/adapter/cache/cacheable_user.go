package cache

import (
	"github.com/bornholm/notes/internal/core/model"
)

type CacheableUser struct {
	model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		string(u.ID()),
		getUsernameCacheKey(u.Username()),
	}
}

func NewCacheableUser(user model.User) *CacheableUser {
	return &CacheableUser{user}
}

var (
	_ model.User = &CacheableUser{}
	_ Cacheable  = &CacheableUser{}
)

func getUsernameCacheKey(username string) string {
	return "username|" + username
}
