package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "spinrate/internal/delivery/context"
	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userSyncService implements the UserSyncUsecase interface.
type userSyncService struct {
	txManager repository.TransactionManager
	now       func() time.Time
	logger    *slog.Logger
}

// UserSyncServiceParams holds dependencies for UserSyncService, injected by Fx.
type UserSyncServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewUserSyncService is the constructor for userSyncService.
func NewUserSyncService(params UserSyncServiceParams) usecase.UserSyncUsecase {
	return &userSyncService{
		txManager: params.TxManager,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *userSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEvent dispatches on the event type. Each kind writes both tables in one transaction.
func (srv *userSyncService) HandleEvent(ctx context.Context, event *entity.IdentityEvent) error {
	if event == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("missing identity event")
	}

	logger := srv.log(ctx).With(slog.String("event_type", event.Type), slog.String("external_id", event.Data.ID))

	switch event.Type {
	case constants.IdentityEventCreated, constants.IdentityEventUpdated, constants.IdentityEventDeleted:
		if event.Data.ID == "" {
			return domainerrors.ErrValidationFailed.WrapMessage("identity event without user ID")
		}
	default:
		logger.Info("Ignoring unhandled identity event")

		return nil
	}

	var err error
	switch event.Type {
	case constants.IdentityEventCreated:
		err = srv.handleCreated(ctx, event.Data)
	case constants.IdentityEventUpdated:
		err = srv.handleUpdated(ctx, logger, event.Data)
	case constants.IdentityEventDeleted:
		err = srv.handleDeleted(ctx, event.Data.ID)
	}

	if err != nil {
		logger.Error("Failed to sync identity event", slog.Any("error", err))

		return err
	}
	logger.Info("Identity event synced")

	return nil
}

func (srv *userSyncService) handleCreated(ctx context.Context, data entity.IdentityEventData) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProfileRepo().Upsert(ctx, data.Profile()); err != nil {
			return errors.Wrap(err, "failed to upsert profile")
		}
		if err := repoFactory.UserRepo().UpsertByExternalID(ctx, data.User()); err != nil {
			return errors.Wrap(err, "failed to upsert user")
		}

		return nil
	})
}

func (srv *userSyncService) handleUpdated(ctx context.Context, logger *slog.Logger, data entity.IdentityEventData) error {
	modifiedAt := srv.now().UTC()

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, err := repoFactory.ProfileRepo().Update(ctx, data.Profile())
		if err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		users, err := repoFactory.UserRepo().UpdateByExternalID(ctx, data.User(), modifiedAt)
		if err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		if profiles == 0 || users == 0 {
			logger.Warn("Identity update matched no rows",
				slog.Int64("profiles", profiles),
				slog.Int64("users", users),
			)
		}

		return nil
	})
}

// handleDeleted removes the user row before the profile row.
func (srv *userSyncService) handleDeleted(ctx context.Context, externalID string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.UserRepo().DeleteByExternalID(ctx, externalID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}
		if _, err := repoFactory.ProfileRepo().Delete(ctx, externalID); err != nil {
			return errors.Wrap(err, "failed to delete profile")
		}

		return nil
	})
}
