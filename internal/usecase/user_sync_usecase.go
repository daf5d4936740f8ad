package usecase

import (
	"context"

	"spinrate/internal/domain/entity"
)

// UserSyncUsecase mirrors identity provider lifecycle events into profiles and users
type UserSyncUsecase interface {
	// HandleEvent applies a created, updated or deleted event. Unknown event types are ignored.
	HandleEvent(ctx context.Context, event *entity.IdentityEvent) error
}
