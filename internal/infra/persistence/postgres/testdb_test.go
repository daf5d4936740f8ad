package postgres

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"spinrate/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "spinrate.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func insertTestAlbum(t *testing.T, db *gorm.DB, title, artist string) *model.AlbumModel {
	t.Helper()

	searchText := title + " " + artist
	albumM := &model.AlbumModel{
		ExternalID: fmt.Sprintf("ext-%s-%d", title, time.Now().UnixNano()),
		Title:      title,
		Artist:     artist,
		Genres:     datatypes.JSON(`["rock","indie"]`),
		MediaLinks: datatypes.JSON(`{"spotify":"https://open.spotify.com/album/x"}`),
		SearchText: &searchText,
	}
	require.NoError(t, db.Create(albumM).Error)

	return albumM
}

func insertTestProfile(t *testing.T, db *gorm.DB, id string) *model.ProfileModel {
	t.Helper()

	email := id + "@example.com"
	first := "First " + id
	profileM := &model.ProfileModel{
		ID:        id,
		Email:     &email,
		FirstName: &first,
	}
	require.NoError(t, db.Create(profileM).Error)

	return profileM
}

func strPtr(s string) *string {
	return &s
}
