package repository

import (
	"context"

	"collabwish/internal/domain/entity"
)

type UserRepository interface {
	// Create a new user document.
	Create(ctx context.Context, user *entity.User) error

	// Get user by document ID.
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// Get user by email (exact, case-sensitive match as stored).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save writes the whole user document back. Every mutation is
	// read-modify-write on the full document.
	Save(ctx context.Context, user *entity.User) error

	// SaveSharePair writes owner and grantee documents atomically so a
	// crash mid-share cannot leave a one-sided grant.
	SaveSharePair(ctx context.Context, owner, grantee *entity.User) error
}
