package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents one roster member. The roster is a small, fixed set
// seeded from configuration; there is no self-registration.
type User struct {
	ID           uuid.UUID
	Username     string // lowercase roster slug, matches the participant balance key
	DisplayName  string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(username, displayName, passwordHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:           uuid.New(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
