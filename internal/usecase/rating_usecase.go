package usecase

import (
	"context"

	"spinrate/internal/domain/entity"
)

// RatingUsecase maintains the denormalised rating aggregates on albums
type RatingUsecase interface {
	// RecomputeAlbumRatings rebuilds verified and unverified aggregates from the stored reviews
	RecomputeAlbumRatings(ctx context.Context, albumID int64) (*entity.AlbumRatings, error)
}
