package postgres

import (
	"context"

	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	"spinrate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// ExistsForReviewer checks the primary for a review by the same reviewer on the album.
func (repo *reviewRepository) ExistsForReviewer(ctx context.Context, albumID int64, reviewer entity.Reviewer) (bool, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.ReviewModel{}).
		Where("album_id = ?", albumID)

	if reviewer.IsVerified() {
		query = query.Where("user_id = ?", reviewer.UserID)
	} else {
		query = query.Where("guest_identifier = ?", reviewer.GuestID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check existing review")
	}

	return count > 0, nil
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Omit("Album", "Profile").Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyReviewed
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAlbumNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListByAlbum retrieves an album's reviews, newest first, with their author profiles.
func (repo *reviewRepository) ListByAlbum(ctx context.Context, albumID int64) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("album_id = ?", albumID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by album")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// StatsByAlbum aggregates the verified or unverified ratings of an album from the primary.
func (repo *reviewRepository) StatsByAlbum(ctx context.Context, albumID int64, verified bool) (*repository.ReviewStats, error) {
	scope := func() *gorm.DB {
		return repo.db.WithContext(ctx).
			Clauses(dbresolver.Write).
			Model(&model.ReviewModel{}).
			Where("album_id = ? AND is_verified = ?", albumID, verified)
	}

	var row struct {
		Average *float64
		Count   int
	}
	if err := scope().
		Select("CAST(AVG(rating) AS DOUBLE PRECISION) AS average, COUNT(*) AS count").
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate review ratings")
	}

	stats := &repository.ReviewStats{
		Average: row.Average,
		Count:   row.Count,
	}
	if row.Count == 0 {
		stats.Average = nil

		return stats, nil
	}

	var latest model.ReviewModel
	if err := scope().
		Select("created_at").
		Order("created_at DESC").
		Limit(1).
		Find(&latest).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest review")
	}
	lastRatedAt := latest.CreatedAt
	stats.LastRatedAt = &lastRatedAt

	return stats, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	review := &entity.Review{
		ID:              data.ID,
		AlbumID:         data.AlbumID,
		UserID:          data.UserID,
		GuestIdentifier: data.GuestIdentifier,
		Rating:          data.Rating,
		ReviewText:      data.ReviewText,
		IsVerified:      data.IsVerified,
		VideoURL:        data.VideoURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Profile != nil {
		review.Author = &entity.ReviewAuthor{
			Email:     data.Profile.Email,
			FirstName: data.Profile.FirstName,
			LastName:  data.Profile.LastName,
			AvatarURL: data.Profile.AvatarURL,
		}
	}

	return review
}

func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:              data.ID,
		AlbumID:         data.AlbumID,
		UserID:          data.UserID,
		GuestIdentifier: data.GuestIdentifier,
		Rating:          data.Rating,
		ReviewText:      data.ReviewText,
		IsVerified:      data.IsVerified,
		VideoURL:        data.VideoURL,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
