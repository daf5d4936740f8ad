package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	mockRepo "spinrate/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRatingService_RecomputeAlbumRatings(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRatingService(RatingServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	average := 4.5
	ratedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)
			albumRepo := mockRepo.NewMockAlbumRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)
			mockFactory.EXPECT().AlbumRepo().Return(albumRepo)

			reviewRepo.EXPECT().StatsByAlbum(ctx, int64(7), true).
				Return(&repository.ReviewStats{Average: &average, Count: 2, LastRatedAt: &ratedAt}, nil)
			reviewRepo.EXPECT().StatsByAlbum(ctx, int64(7), false).
				Return(&repository.ReviewStats{Count: 0}, nil)
			albumRepo.EXPECT().
				UpdateRatings(ctx, int64(7), mock.MatchedBy(func(ratings entity.AlbumRatings) bool {
					return *ratings.Verified.Count == 2 && *ratings.Verified.Average == 4.5 &&
						*ratings.Unverified.Count == 0 && ratings.Unverified.Average == nil
				})).
				Return(nil)

			return fn(mockFactory)
		})

	ratings, err := service.RecomputeAlbumRatings(ctx, 7)

	require.NoError(t, err)
	require.NotNil(t, ratings)
	assert.Equal(t, ratedAt, *ratings.Verified.LastRatedAt)
	assert.Nil(t, ratings.Unverified.LastRatedAt)
}

func TestRatingService_RecomputeAlbumRatings_AlbumMissing(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRatingService(RatingServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)
			albumRepo := mockRepo.NewMockAlbumRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)
			mockFactory.EXPECT().AlbumRepo().Return(albumRepo)
			reviewRepo.EXPECT().StatsByAlbum(ctx, int64(99), mock.AnythingOfType("bool")).
				Return(&repository.ReviewStats{}, nil)
			albumRepo.EXPECT().UpdateRatings(ctx, int64(99), mock.AnythingOfType("entity.AlbumRatings")).
				Return(repository.ErrAlbumNotFound)

			return fn(mockFactory)
		})

	ratings, err := service.RecomputeAlbumRatings(ctx, 99)

	assert.Nil(t, ratings)
	assert.ErrorIs(t, err, repository.ErrAlbumNotFound)
}

func TestRatingService_RecomputeAlbumRatings_StatsFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRatingService(RatingServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			reviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().ReviewRepo().Return(reviewRepo)
			reviewRepo.EXPECT().StatsByAlbum(ctx, int64(7), true).Return(nil, errors.New("canceling statement"))

			return fn(mockFactory)
		})

	_, err := service.RecomputeAlbumRatings(ctx, 7)

	assert.ErrorContains(t, err, "failed to aggregate verified ratings")
}
