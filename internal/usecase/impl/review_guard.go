package impl

import (
	"context"

	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"

	"github.com/pkg/errors"
)

// ensureNotReviewed fails with ALREADY_REVIEWED when the reviewer already reviewed the album.
// The partial unique indexes on reviews still decide races between concurrent submissions.
func ensureNotReviewed(ctx context.Context, reviewRepo repository.ReviewRepository, albumID int64, reviewer entity.Reviewer) error {
	exists, err := reviewRepo.ExistsForReviewer(ctx, albumID, reviewer)
	if err != nil {
		return errors.Wrap(err, "failed to check existing review")
	}
	if exists {
		return domainerrors.ErrAlreadyReviewed
	}

	return nil
}
