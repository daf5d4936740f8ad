package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	"spinrate/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// albumRepository implements the repository.AlbumRepository interface.
type albumRepository struct {
	db *gorm.DB
}

// NewAlbumRepository is the constructor for albumRepository.
func NewAlbumRepository(db *gorm.DB) repository.AlbumRepository {
	return &albumRepository{
		db: db,
	}
}

// FindWindow returns the albums in rows [From, To] ordered by ID, plus the exact filtered total.
func (repo *albumRepository) FindWindow(ctx context.Context, window repository.AlbumWindow) ([]*entity.Album, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.AlbumModel{})

	if term := strings.TrimSpace(window.Search); term != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(`LOWER(search_text) LIKE ? ESCAPE '\'`, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count albums")
	}

	limit := window.To - window.From + 1
	if limit <= 0 || int64(window.From) >= total {
		return []*entity.Album{}, total, nil
	}

	var albumModels []*model.AlbumModel
	if err := query.
		Order("id ASC").
		Offset(window.From).
		Limit(limit).
		Find(&albumModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find albums")
	}

	albums := make([]*entity.Album, 0, len(albumModels))
	for _, albumM := range albumModels {
		albums = append(albums, toAlbumDomain(albumM))
	}

	return albums, total, nil
}

// FindByID retrieves an album by its ID.
func (repo *albumRepository) FindByID(ctx context.Context, id int64) (*entity.Album, error) {
	var albumM model.AlbumModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&albumM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAlbumNotFound
		}

		return nil, errors.Wrap(err, "failed to find album by ID")
	}

	return toAlbumDomain(&albumM), nil
}

// UpdateRatings overwrites both rating aggregates of an album.
func (repo *albumRepository) UpdateRatings(ctx context.Context, id int64, ratings entity.AlbumRatings) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlbumModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"verified_rating":          ratings.Verified.Average,
			"verified_rating_count":    ratings.Verified.Count,
			"last_verified_rated_at":   ratings.Verified.LastRatedAt,
			"unverified_rating":        ratings.Unverified.Average,
			"unverified_rating_count":  ratings.Unverified.Count,
			"last_unverified_rated_at": ratings.Unverified.LastRatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update album ratings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAlbumNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAlbumDomain(data *model.AlbumModel) *entity.Album {
	if data == nil {
		return nil
	}

	createdAt := data.CreatedAt

	return &entity.Album{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Title:      data.Title,
		Artist:     data.Artist,
		Year:       data.Year,
		CoverURL:   data.CoverURL,
		Genres:     decodeGenres(data.Genres),
		MediaLinks: decodeMediaLinks(data.MediaLinks),
		Score:      data.Score,
		SearchText: data.SearchText,
		VideoDate:  data.VideoDate,
		VRef:       data.VRef,
		Ratings: entity.AlbumRatings{
			Verified: entity.RatingAggregate{
				Average:     data.VerifiedRating,
				Count:       data.VerifiedRatingCount,
				LastRatedAt: data.LastVerifiedRatedAt,
			},
			Unverified: entity.RatingAggregate{
				Average:     data.UnverifiedRating,
				Count:       data.UnverifiedRatingCount,
				LastRatedAt: data.LastUnverifiedRatedAt,
			},
		},
		CreatedAt: &createdAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func decodeGenres(raw datatypes.JSON) []string {
	genres := []string{}
	if len(raw) == 0 {
		return genres
	}
	// malformed JSON yields no genres
	_ = json.Unmarshal(raw, &genres)

	return genres
}

func decodeMediaLinks(raw datatypes.JSON) map[string]string {
	links := map[string]string{}
	if len(raw) == 0 {
		return links
	}
	_ = json.Unmarshal(raw, &links)

	return links
}
