package postgres

import (
	"context"

	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	"spinrate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// FindByID retrieves a profile by external identity ID.
func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// Upsert inserts the profile, or overwrites email, names and avatar when it exists.
func (repo *profileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "avatar_url"}),
		}).
		Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert profile")
	}

	profile.CreatedAt = profileM.CreatedAt

	return nil
}

// Update overwrites email, names and avatar of an existing profile.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"email":      profile.Email,
			"first_name": profile.FirstName,
			"last_name":  profile.LastName,
			"avatar_url": profile.AvatarURL,
		})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to update profile")
	}

	return result.RowsAffected, nil
}

// Delete removes a profile by external identity ID.
func (repo *profileRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProfileModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete profile")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		AvatarURL: data.AvatarURL,
		CreatedAt: data.CreatedAt,
	}
}
