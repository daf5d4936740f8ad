package repository

import (
	"context"
	"errors"
	"time"

	"spinrate/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations on internal user records,
// all keyed by the external identity ID stored on the row.
type UserRepository interface {
	// FindByExternalID retrieves a user by external identity ID.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// UpsertByExternalID inserts the user or overwrites its synced fields.
	UpsertByExternalID(ctx context.Context, user *entity.User) error

	// UpdateByExternalID overwrites the synced fields and stamps the modification time.
	UpdateByExternalID(ctx context.Context, user *entity.User, modifiedAt time.Time) (int64, error)

	// DeleteByExternalID removes the user and returns the rows affected.
	DeleteByExternalID(ctx context.Context, externalID string) (int64, error)
}
