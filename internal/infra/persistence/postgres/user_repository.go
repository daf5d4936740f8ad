package postgres

import (
	"context"
	"time"

	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	"spinrate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByExternalID retrieves a user by external identity ID.
func (repo *userRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("clerk_user_id = ?", externalID).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by external ID")
	}

	return toUserDomain(&userM), nil
}

// UpsertByExternalID inserts the user, or overwrites the synced fields on conflict with the external ID.
func (repo *userRepository) UpsertByExternalID(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user ID")
		}
		userM.ID = id.String()
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clerk_user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "additional_context"}),
		}).
		Create(userM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// UpdateByExternalID overwrites the synced fields and stamps modified_at.
func (repo *userRepository) UpdateByExternalID(ctx context.Context, user *entity.User, modifiedAt time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("clerk_user_id = ?", user.ExternalUserID).
		Updates(map[string]any{
			"email":              user.Email,
			"first_name":         user.FirstName,
			"last_name":          user.LastName,
			"additional_context": user.AdditionalContext,
			"modified_at":        modifiedAt,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update user")
	}

	return result.RowsAffected, nil
}

// DeleteByExternalID removes the user keyed by the external identity ID.
func (repo *userRepository) DeleteByExternalID(ctx context.Context, externalID string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("clerk_user_id = ?", externalID).
		Delete(&model.UserModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete user")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		ExternalUserID:       data.ClerkUserID,
		Email:                data.Email,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		AdditionalContext:    data.AdditionalContext,
		StripeSubscriptionID: data.StripeSubscriptionID,
		CreatedAt:            data.CreatedAt,
		ModifiedAt:           data.ModifiedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		ClerkUserID:          data.ExternalUserID,
		Email:                data.Email,
		FirstName:            data.FirstName,
		LastName:             data.LastName,
		AdditionalContext:    data.AdditionalContext,
		StripeSubscriptionID: data.StripeSubscriptionID,
		CreatedAt:            data.CreatedAt,
		ModifiedAt:           data.ModifiedAt,
	}
}
