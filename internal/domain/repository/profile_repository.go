package repository

import (
	"context"
	"errors"

	"spinrate/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile matches the external identity ID.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines persistence operations on public profiles.
type ProfileRepository interface {
	// FindByID retrieves a profile by external identity ID. Returns ErrProfileNotFound when absent.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// Upsert inserts the profile or overwrites its mutable fields.
	Upsert(ctx context.Context, profile *entity.Profile) error

	// Update overwrites the mutable fields of an existing profile and returns the rows affected.
	Update(ctx context.Context, profile *entity.Profile) (int64, error)

	// Delete removes the profile and returns the rows affected.
	Delete(ctx context.Context, id string) (int64, error)
}
