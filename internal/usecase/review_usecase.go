package usecase

import (
	"context"

	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/service"
)

// SubmitReviewInput carries a review submission.
// ExternalIdentityID is empty for guest submissions.
type SubmitReviewInput struct {
	AlbumID            int64
	Rating             int
	ReviewText         *string
	ExternalIdentityID string
}

// ReviewUsecase defines the interface for review submission and listing
type ReviewUsecase interface {
	// SubmitReview stores at most one review per (album, reviewer).
	// Fails with NO_PROFILE, ALREADY_REVIEWED, INVALID_RATING or a store error.
	SubmitReview(ctx context.Context, input *SubmitReviewInput, guests service.GuestStore) (*entity.Review, error)

	// FetchReviews lists an album's reviews newest first with author display fields
	FetchReviews(ctx context.Context, albumID int64) ([]*entity.Review, error)
}
