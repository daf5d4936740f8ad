package repository

import (
	"context"
	"time"

	"spinrate/internal/domain/entity"
)

// ReviewStats summarises the reviews of one reviewer class on an album.
type ReviewStats struct {
	Average     *float64
	Count       int
	LastRatedAt *time.Time
}

// ReviewRepository defines persistence operations on reviews.
type ReviewRepository interface {
	// ExistsForReviewer reports whether the reviewer already has a review on the album.
	ExistsForReviewer(ctx context.Context, albumID int64, reviewer entity.Reviewer) (bool, error)

	// Create inserts a review and fills its generated ID and timestamps.
	// A uniqueness violation on (album, reviewer) is reported as domain errors ErrAlreadyReviewed.
	Create(ctx context.Context, review *entity.Review) error

	// ListByAlbum returns the album's reviews newest first, with author display fields.
	ListByAlbum(ctx context.Context, albumID int64) ([]*entity.Review, error)

	// StatsByAlbum aggregates verified or unverified ratings of an album.
	StatsByAlbum(ctx context.Context, albumID int64, verified bool) (*ReviewStats, error)
}
