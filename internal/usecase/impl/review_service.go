package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "spinrate/internal/delivery/context"
	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	"spinrate/internal/domain/service"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	identity   usecase.IdentityUsecase
	publisher  service.EventPublisher
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Identity   usecase.IdentityUsecase
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		identity:   params.Identity,
		publisher:  params.Publisher,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitReview resolves the reviewer, then checks and inserts inside one transaction.
// Guests never store review text.
func (srv *reviewService) SubmitReview(ctx context.Context, input *usecase.SubmitReviewInput, guests service.GuestStore) (*entity.Review, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("review input is required")
	}
	if input.Rating < constants.MinRating || input.Rating > constants.MaxRating {
		return nil, domainerrors.ErrInvalidRating
	}

	reviewer, err := srv.resolveReviewer(ctx, input.ExternalIdentityID, guests)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		AlbumID: input.AlbumID,
		Rating:  input.Rating,
	}
	if reviewer.IsVerified() {
		review.ReviewText = normalizeReviewText(input.ReviewText)
	}
	reviewer.Apply(review)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		if err := ensureNotReviewed(ctx, reviewRepo, input.AlbumID, reviewer); err != nil {
			return err
		}

		return reviewRepo.Create(ctx, review)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrAlreadyReviewed) {
			srv.log(ctx).Info("Duplicate review rejected",
				slog.Int64("album_id", input.AlbumID),
				slog.Bool("verified", reviewer.IsVerified()),
			)

			return nil, domainerrors.ErrAlreadyReviewed
		}
		if errors.Is(err, repository.ErrAlbumNotFound) {
			return nil, domainerrors.ErrAlbumNotFound
		}
		srv.log(ctx).Error("Failed to submit review", slog.Int64("album_id", input.AlbumID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Review submitted",
		slog.Int64("review_id", review.ID),
		slog.Int64("album_id", review.AlbumID),
		slog.Bool("verified", review.IsVerified),
	)
	srv.publishSubmitted(ctx, review)

	return review, nil
}

// FetchReviews lists an album's reviews newest first.
func (srv *reviewService) FetchReviews(ctx context.Context, albumID int64) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch reviews")
	}

	return reviews, nil
}

func (srv *reviewService) resolveReviewer(ctx context.Context, externalID string, guests service.GuestStore) (entity.Reviewer, error) {
	if externalID != "" {
		userID, err := srv.identity.ResolveVerified(ctx, externalID)
		if err != nil {
			return entity.Reviewer{}, err
		}

		return entity.VerifiedReviewer(userID), nil
	}

	guestID, err := srv.identity.ResolveGuest(ctx, guests)
	if err != nil {
		return entity.Reviewer{}, err
	}

	return entity.GuestReviewer(guestID), nil
}

// publishSubmitted notifies the rating worker. The review is already committed,
// so a publish failure is logged and not returned.
func (srv *reviewService) publishSubmitted(ctx context.Context, review *entity.Review) {
	if srv.publisher == nil {
		return
	}

	event := &service.ReviewSubmittedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		ReviewID:    review.ID,
		AlbumID:     review.AlbumID,
		Rating:      review.Rating,
		IsVerified:  review.IsVerified,
		SubmittedAt: review.CreatedAt,
	}
	if event.SubmittedAt.IsZero() {
		event.SubmittedAt = time.Now().UTC()
	}

	if err := srv.publisher.PublishReviewSubmitted(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish review event",
			slog.Int64("review_id", review.ID),
			slog.Any("error", err),
		)
	}
}

func normalizeReviewText(text *string) *string {
	if text == nil || strings.TrimSpace(*text) == "" {
		return nil
	}

	value := *text

	return &value
}
