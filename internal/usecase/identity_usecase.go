package usecase

import (
	"context"

	"spinrate/internal/domain/service"
)

// IdentityUsecase resolves who is submitting a review
type IdentityUsecase interface {
	// ResolveVerified maps an external identity ID to the verified user ID.
	// Fails with NO_PROFILE when no profile exists for the identity.
	ResolveVerified(ctx context.Context, externalID string) (string, error)

	// ResolveGuest returns the client's guest identifier, minting and saving one on first use
	ResolveGuest(ctx context.Context, store service.GuestStore) (string, error)
}
