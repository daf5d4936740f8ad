package impl

import (
	"context"
	"log/slog"

	deliverycontext "spinrate/internal/delivery/context"
	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface.
type ratingService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// RecomputeAlbumRatings aggregates both reviewer classes and writes them to the album in one transaction.
// The result depends only on stored reviews, so redelivered events are harmless.
func (srv *ratingService) RecomputeAlbumRatings(ctx context.Context, albumID int64) (*entity.AlbumRatings, error) {
	var ratings entity.AlbumRatings

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		verified, err := reviewRepo.StatsByAlbum(ctx, albumID, true)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate verified ratings")
		}
		unverified, err := reviewRepo.StatsByAlbum(ctx, albumID, false)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate unverified ratings")
		}

		ratings = entity.AlbumRatings{
			Verified:   toRatingAggregate(verified),
			Unverified: toRatingAggregate(unverified),
		}

		return repoFactory.AlbumRepo().UpdateRatings(ctx, albumID, ratings)
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Album ratings recomputed",
		slog.Int64("album_id", albumID),
		slog.Int("verified_count", *ratings.Verified.Count),
		slog.Int("unverified_count", *ratings.Unverified.Count),
	)

	return &ratings, nil
}

func toRatingAggregate(stats *repository.ReviewStats) entity.RatingAggregate {
	count := stats.Count

	return entity.RatingAggregate{
		Average:     stats.Average,
		Count:       &count,
		LastRatedAt: stats.LastRatedAt,
	}
}
