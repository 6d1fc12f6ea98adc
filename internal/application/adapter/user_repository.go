package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/team-dashboard/backend/internal/domain/entity"
)

// UserRepository defines the interface for roster member persistence.
type UserRepository interface {
	// FindByUsername retrieves a roster member by username slug.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a roster member by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// EnsureExists creates the roster member if absent. Used by startup
	// seeding; existing members are left untouched.
	EnsureExists(ctx context.Context, user *entity.User) error
}
