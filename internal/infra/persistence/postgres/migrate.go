package postgres

import (
	"context"

	"spinrate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewIndexes enforce at most one review per (album, reviewer) for each reviewer kind.
// Partial indexes let the other identity column stay NULL on every row.
var reviewIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_reviews_album_user
		ON reviews (album_id, user_id) WHERE user_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_reviews_album_guest
		ON reviews (album_id, guest_identifier) WHERE guest_identifier IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_album_created
		ON reviews (album_id, created_at DESC)`,
}

// Migrate creates or updates the schema for every persisted model.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(
		&model.ProfileModel{},
		&model.UserModel{},
		&model.AlbumModel{},
		&model.ReviewModel{},
	); err != nil {
		return errors.Wrap(err, "failed to auto-migrate schema")
	}

	for _, stmt := range reviewIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to create review index")
		}
	}

	return nil
}
