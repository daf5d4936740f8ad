package postgres

import (
	"context"
	"testing"
	"time"

	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReview(albumID int64, reviewer entity.Reviewer, rating int) *entity.Review {
	review := &entity.Review{
		AlbumID: albumID,
		Rating:  rating,
	}
	reviewer.Apply(review)

	return review
}

func TestReviewRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	album := insertTestAlbum(t, db, "Homogenic", "Bjork")
	other := insertTestAlbum(t, db, "Vespertine", "Bjork")
	insertTestProfile(t, db, "user_1")

	verified := entity.VerifiedReviewer("user_1")
	guest := entity.GuestReviewer("guest-abc")

	t.Run("verified review gets generated fields", func(t *testing.T) {
		review := newTestReview(album.ID, verified, 5)
		review.ReviewText = strPtr("a classic")

		require.NoError(t, repo.Create(ctx, review))
		assert.NotZero(t, review.ID)
		assert.False(t, review.CreatedAt.IsZero())
	})

	t.Run("second verified review on same album is rejected by the store", func(t *testing.T) {
		err := repo.Create(ctx, newTestReview(album.ID, verified, 3))
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	})

	t.Run("guest review on same album is independent", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestReview(album.ID, guest, 4)))
	})

	t.Run("second guest review on same album is rejected", func(t *testing.T) {
		err := repo.Create(ctx, newTestReview(album.ID, guest, 2))
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyReviewed)
	})

	t.Run("same reviewer on another album is allowed", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, newTestReview(other.ID, verified, 4)))
		require.NoError(t, repo.Create(ctx, newTestReview(other.ID, guest, 4)))
	})

	t.Run("unknown album", func(t *testing.T) {
		err := repo.Create(ctx, newTestReview(other.ID+1000, guest, 4))
		assert.ErrorIs(t, err, repository.ErrAlbumNotFound)
	})

	t.Run("rating out of range", func(t *testing.T) {
		err := repo.Create(ctx, newTestReview(album.ID, entity.GuestReviewer("guest-xyz"), 6))
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	})
}

func TestReviewRepository_ExistsForReviewer(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	album := insertTestAlbum(t, db, "Loveless", "My Bloody Valentine")
	insertTestProfile(t, db, "user_1")
	require.NoError(t, repo.Create(ctx, newTestReview(album.ID, entity.VerifiedReviewer("user_1"), 5)))

	exists, err := repo.ExistsForReviewer(ctx, album.ID, entity.VerifiedReviewer("user_1"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForReviewer(ctx, album.ID, entity.GuestReviewer("user_1"))
	require.NoError(t, err)
	assert.False(t, exists, "guest identifiers never match verified reviews")

	exists, err = repo.ExistsForReviewer(ctx, album.ID+1, entity.VerifiedReviewer("user_1"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestReviewRepository_ListByAlbum(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	album := insertTestAlbum(t, db, "Remain in Light", "Talking Heads")
	insertTestProfile(t, db, "user_1")

	older := newTestReview(album.ID, entity.VerifiedReviewer("user_1"), 4)
	older.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, older))

	newer := newTestReview(album.ID, entity.GuestReviewer("guest-1"), 2)
	newer.CreatedAt = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newer))

	reviews, err := repo.ListByAlbum(ctx, album.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	assert.Equal(t, newer.ID, reviews[0].ID)
	assert.Nil(t, reviews[0].Author)
	assert.False(t, reviews[0].IsVerified)

	assert.Equal(t, older.ID, reviews[1].ID)
	require.NotNil(t, reviews[1].Author)
	assert.Equal(t, "user_1@example.com", *reviews[1].Author.Email)
	assert.True(t, reviews[1].IsVerified)

	empty, err := repo.ListByAlbum(ctx, album.ID+1000)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReviewRepository_StatsByAlbum(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepository(db)
	ctx := context.Background()

	album := insertTestAlbum(t, db, "Aquemini", "OutKast")
	insertTestProfile(t, db, "user_1")
	insertTestProfile(t, db, "user_2")

	latest := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	first := newTestReview(album.ID, entity.VerifiedReviewer("user_1"), 5)
	first.CreatedAt = latest.Add(-time.Hour)
	second := newTestReview(album.ID, entity.VerifiedReviewer("user_2"), 4)
	second.CreatedAt = latest
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	stats, err := repo.StatsByAlbum(ctx, album.ID, true)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Count)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 4.5, *stats.Average, 0.001)
	require.NotNil(t, stats.LastRatedAt)
	assert.True(t, latest.Equal(*stats.LastRatedAt))

	stats, err = repo.StatsByAlbum(ctx, album.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Count)
	assert.Nil(t, stats.Average)
	assert.Nil(t, stats.LastRatedAt)
}
