package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	mockRepo "spinrate/internal/mocks/repository"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userSyncServiceFixtures struct {
	service   usecase.UserSyncUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestUserSyncService(t *testing.T) userSyncServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return userSyncServiceFixtures{
		service:   NewUserSyncService(UserSyncServiceParams{TxManager: txManager, Logger: logger}),
		txManager: txManager,
	}
}

// expectSyncTx runs the transaction body against a factory exposing fresh profile and user repositories.
func (fx userSyncServiceFixtures) expectSyncTx(
	t *testing.T,
	ctx context.Context,
	setup func(profileRepo *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository),
) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			profileRepo := mockRepo.NewMockProfileRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(profileRepo).Maybe()
			mockFactory.EXPECT().UserRepo().Return(userRepo).Maybe()
			setup(profileRepo, userRepo)

			return fn(mockFactory)
		})
}

func sampleIdentityEvent(eventType string) *entity.IdentityEvent {
	primary := "email_a"
	first := "Ada"
	username := "ada"

	return &entity.IdentityEvent{
		Type: eventType,
		Data: entity.IdentityEventData{
			ID:                    "user_123",
			EmailAddresses:        []entity.IdentityEmail{{ID: "email_a", EmailAddress: "x@y.com"}},
			PrimaryEmailAddressID: &primary,
			FirstName:             &first,
			Username:              &username,
		},
	}
}

func TestUserSyncService_HandleEvent_Created(t *testing.T) {
	fx := createTestUserSyncService(t)

	ctx := context.Background()
	fx.expectSyncTx(t, ctx, func(profileRepo *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository) {
		profileRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
				return profile.ID == "user_123" && profile.Email != nil && *profile.Email == "x@y.com" &&
					profile.LastName == nil
			})).
			Return(nil)
		userRepo.EXPECT().
			UpsertByExternalID(ctx, mock.MatchedBy(func(user *entity.User) bool {
				return user.ExternalUserID == "user_123" && user.AdditionalContext != nil && *user.AdditionalContext == "ada"
			})).
			Return(nil)
	})

	err := fx.service.HandleEvent(ctx, sampleIdentityEvent(constants.IdentityEventCreated))

	require.NoError(t, err)
}

func TestUserSyncService_HandleEvent_CreatedUserFailureFailsEvent(t *testing.T) {
	fx := createTestUserSyncService(t)

	ctx := context.Background()
	fx.expectSyncTx(t, ctx, func(profileRepo *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository) {
		profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
		userRepo.EXPECT().
			UpsertByExternalID(ctx, mock.AnythingOfType("*entity.User")).
			Return(errors.New("unique violation on users.email"))
	})

	err := fx.service.HandleEvent(ctx, sampleIdentityEvent(constants.IdentityEventCreated))

	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to upsert user")
}

func TestUserSyncService_HandleEvent_Updated(t *testing.T) {
	tests := []struct {
		name     string
		profiles int64
		users    int64
	}{
		{name: "both rows matched", profiles: 1, users: 1},
		{name: "unknown identity is a no-op", profiles: 0, users: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserSyncService(t)

			ctx := context.Background()
			fx.expectSyncTx(t, ctx, func(profileRepo *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository) {
				profileRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Profile")).Return(tt.profiles, nil)
				userRepo.EXPECT().
					UpdateByExternalID(ctx, mock.AnythingOfType("*entity.User"), mock.AnythingOfType("time.Time")).
					Return(tt.users, nil)
			})

			err := fx.service.HandleEvent(ctx, sampleIdentityEvent(constants.IdentityEventUpdated))

			require.NoError(t, err)
		})
	}
}

func TestUserSyncService_HandleEvent_Deleted(t *testing.T) {
	fx := createTestUserSyncService(t)

	ctx := context.Background()
	var order []string
	fx.expectSyncTx(t, ctx, func(profileRepo *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().
			DeleteByExternalID(ctx, "user_123").
			Run(func(context.Context, string) { order = append(order, "users") }).
			Return(int64(1), nil)
		profileRepo.EXPECT().
			Delete(ctx, "user_123").
			Run(func(context.Context, string) { order = append(order, "profiles") }).
			Return(int64(1), nil)
	})

	err := fx.service.HandleEvent(ctx, &entity.IdentityEvent{
		Type: constants.IdentityEventDeleted,
		Data: entity.IdentityEventData{ID: "user_123"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"users", "profiles"}, order)
}

func TestUserSyncService_HandleEvent_DeleteFailureFailsEvent(t *testing.T) {
	fx := createTestUserSyncService(t)

	ctx := context.Background()
	fx.expectSyncTx(t, ctx, func(_ *mockRepo.MockProfileRepository, userRepo *mockRepo.MockUserRepository) {
		userRepo.EXPECT().DeleteByExternalID(ctx, "user_123").Return(int64(0), errors.New("deadlock detected"))
	})

	err := fx.service.HandleEvent(ctx, sampleIdentityEvent(constants.IdentityEventDeleted))

	assert.ErrorContains(t, err, "failed to delete user")
}

func TestUserSyncService_HandleEvent_UnknownTypeIgnored(t *testing.T) {
	fx := createTestUserSyncService(t)

	tests := []struct {
		name  string
		event *entity.IdentityEvent
	}{
		{
			name:  "unknown kind with user ID",
			event: sampleIdentityEvent("session.created"),
		},
		{
			name:  "unknown kind without user ID",
			event: &entity.IdentityEvent{Type: "session.ended"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fx.service.HandleEvent(context.Background(), tt.event)

			assert.NoError(t, err)
		})
	}
}

func TestUserSyncService_HandleEvent_MissingID(t *testing.T) {
	fx := createTestUserSyncService(t)

	for _, eventType := range []string{constants.IdentityEventCreated, constants.IdentityEventUpdated, constants.IdentityEventDeleted} {
		t.Run(eventType, func(t *testing.T) {
			err := fx.service.HandleEvent(context.Background(), &entity.IdentityEvent{Type: eventType})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
