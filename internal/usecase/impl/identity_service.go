// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "spinrate/internal/delivery/context"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	"spinrate/internal/domain/service"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	profileRepo repository.ProfileRepository
	generator   service.GuestIDGenerator
	logger      *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Generator   service.GuestIDGenerator
	Logger      *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		profileRepo: params.ProfileRepo,
		generator:   params.Generator,
		logger:      params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveVerified returns the profile ID of a signed-in identity.
func (srv *identityService) ResolveVerified(ctx context.Context, externalID string) (string, error) {
	if externalID == "" {
		return "", domainerrors.ErrNoProfile
	}

	profile, err := srv.profileRepo.FindByID(ctx, externalID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Warn("Signed-in identity has no profile", slog.String("external_id", externalID))

		return "", domainerrors.ErrNoProfile
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve profile")
	}

	return profile.ID, nil
}

// ResolveGuest returns the stored guest ID, or mints and stores a new one.
func (srv *identityService) ResolveGuest(ctx context.Context, store service.GuestStore) (string, error) {
	if store == nil {
		return "", domainerrors.ErrGuestIdentityUnavailable
	}

	guestID, err := store.Load(ctx)
	if err != nil {
		return "", domainerrors.ErrGuestIdentityUnavailable.WrapMessage(err.Error())
	}
	if guestID != "" {
		return guestID, nil
	}

	guestID = srv.generator.NewGuestID()
	if err := store.Save(ctx, guestID); err != nil {
		return "", domainerrors.ErrGuestIdentityUnavailable.WrapMessage(err.Error())
	}
	srv.log(ctx).Debug("Issued new guest identity")

	return guestID, nil
}
