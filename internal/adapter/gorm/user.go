package gorm

import (
	"time"

	"github.com/bornholm/notes/internal/core/model"
)

type User struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Username     string `gorm:"uniqueIndex"`
	PasswordHash string

	Notes []*Note `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE;"`
}

type wrappedUser struct {
	u *User
}

// ID implements model.User.
func (w *wrappedUser) ID() model.UserID {
	return model.UserID(w.u.ID)
}

// Username implements model.User.
func (w *wrappedUser) Username() string {
	return w.u.Username
}

// PasswordHash implements model.User.
func (w *wrappedUser) PasswordHash() string {
	return w.u.PasswordHash
}

// CreatedAt implements model.User.
func (w *wrappedUser) CreatedAt() time.Time {
	return w.u.CreatedAt
}

// UpdatedAt implements model.User.
func (w *wrappedUser) UpdatedAt() time.Time {
	return w.u.UpdatedAt
}

var _ model.User = &wrappedUser{}
