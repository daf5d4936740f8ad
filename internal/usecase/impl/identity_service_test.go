package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	mockRepo "spinrate/internal/mocks/repository"
	mockSvc "spinrate/internal/mocks/service"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service     usecase.IdentityUsecase
	profileRepo *mockRepo.MockProfileRepository
	generator   *mockSvc.MockGuestIDGenerator
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	generator := mockSvc.NewMockGuestIDGenerator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewIdentityService(IdentityServiceParams{
		ProfileRepo: profileRepo,
		Generator:   generator,
		Logger:      logger,
	})

	return identityServiceFixtures{
		service:     service,
		profileRepo: profileRepo,
		generator:   generator,
	}
}

// memoryGuestStore is a GuestStore backed by a single string, like one browser's cookie jar.
type memoryGuestStore struct {
	value string
	saves int
}

func (s *memoryGuestStore) Load(context.Context) (string, error) { return s.value, nil }

func (s *memoryGuestStore) Save(_ context.Context, id string) error {
	s.value = id
	s.saves++

	return nil
}

func TestIdentityService_ResolveVerified(t *testing.T) {
	t.Run("profile exists", func(t *testing.T) {
		fx := createTestIdentityService(t)

		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByID(ctx, "user_abc").Return(&entity.Profile{ID: "user_abc"}, nil)

		userID, err := fx.service.ResolveVerified(ctx, "user_abc")

		require.NoError(t, err)
		assert.Equal(t, "user_abc", userID)
	})

	t.Run("no profile", func(t *testing.T) {
		fx := createTestIdentityService(t)

		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByID(ctx, "user_new").Return(nil, repository.ErrProfileNotFound)

		userID, err := fx.service.ResolveVerified(ctx, "user_new")

		assert.Empty(t, userID)
		assert.ErrorIs(t, err, domainerrors.ErrNoProfile)
	})

	t.Run("empty identity", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.ResolveVerified(context.Background(), "")

		assert.ErrorIs(t, err, domainerrors.ErrNoProfile)
	})

	t.Run("store failure is not NO_PROFILE", func(t *testing.T) {
		fx := createTestIdentityService(t)

		ctx := context.Background()
		fx.profileRepo.EXPECT().FindByID(ctx, "user_abc").Return(nil, errors.New("connection refused"))

		_, err := fx.service.ResolveVerified(ctx, "user_abc")

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrNoProfile)
	})
}

func TestIdentityService_ResolveGuest_MintsOnceAndReuses(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	store := &memoryGuestStore{}
	fx.generator.EXPECT().NewGuestID().Return("0b7f3c1e-guest").Once()

	first, err := fx.service.ResolveGuest(ctx, store)
	require.NoError(t, err)
	second, err := fx.service.ResolveGuest(ctx, store)
	require.NoError(t, err)

	assert.Equal(t, "0b7f3c1e-guest", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.saves)
}

func TestIdentityService_ResolveGuest_ExistingValue(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	store := mockSvc.NewMockGuestStore(t)
	store.EXPECT().Load(ctx).Return("existing-guest", nil)

	guestID, err := fx.service.ResolveGuest(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, "existing-guest", guestID)
}

func TestIdentityService_ResolveGuest_StorageFailures(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.ResolveGuest(context.Background(), nil)

		assert.ErrorIs(t, err, domainerrors.ErrGuestIdentityUnavailable)
	})

	t.Run("load fails", func(t *testing.T) {
		fx := createTestIdentityService(t)

		ctx := context.Background()
		store := mockSvc.NewMockGuestStore(t)
		store.EXPECT().Load(ctx).Return("", errors.New("storage disabled"))

		_, err := fx.service.ResolveGuest(ctx, store)

		assert.ErrorIs(t, err, domainerrors.ErrGuestIdentityUnavailable)
	})

	t.Run("save fails", func(t *testing.T) {
		fx := createTestIdentityService(t)

		ctx := context.Background()
		store := mockSvc.NewMockGuestStore(t)
		store.EXPECT().Load(ctx).Return("", nil)
		fx.generator.EXPECT().NewGuestID().Return("new-guest-id")
		store.EXPECT().Save(ctx, "new-guest-id").Return(errors.New("quota exceeded"))

		_, err := fx.service.ResolveGuest(ctx, store)

		assert.ErrorIs(t, err, domainerrors.ErrGuestIdentityUnavailable)
	})
}
