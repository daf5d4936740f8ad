package handler

import (
	"time"

	"spinrate/internal/domain/entity"
)

// AlbumResponse is the public representation of a catalog album.
type AlbumResponse struct {
	ID         int64             `json:"id"`
	Title      string            `json:"title"`
	Artist     string            `json:"artist"`
	Year       *int              `json:"year"`
	CoverURL   *string           `json:"cover_url"`
	Genres     []string          `json:"genres"`
	MediaLinks map[string]string `json:"media_links"`
	Score      *string           `json:"score"`
	VideoDate  *string           `json:"video_date"`
	VRef       *string           `json:"vref"`
	Verified   RatingResponse    `json:"verified_rating"`
	Unverified RatingResponse    `json:"unverified_rating"`
}

// RatingResponse is one reviewer class's aggregate.
type RatingResponse struct {
	Average     *float64   `json:"average"`
	Count       int        `json:"count"`
	LastRatedAt *time.Time `json:"last_rated_at"`
}

// AlbumPageResponse is one catalog window. NextPage is null on the last page.
type AlbumPageResponse struct {
	Albums   []AlbumResponse `json:"albums"`
	Page     int             `json:"page"`
	NextPage *int            `json:"next_page"`
}

// ReviewResponse is a stored review. Author is null for guest reviews.
type ReviewResponse struct {
	ID         int64           `json:"id"`
	AlbumID    int64           `json:"album_id"`
	Rating     int             `json:"rating"`
	ReviewText *string         `json:"review_text"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
	Author     *AuthorResponse `json:"author"`
}

// AuthorResponse carries the display fields of a verified reviewer.
type AuthorResponse struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	AvatarURL *string `json:"avatar_url"`
}

func toAlbumResponse(album *entity.Album) AlbumResponse {
	genres := album.Genres
	if genres == nil {
		genres = []string{}
	}
	mediaLinks := album.MediaLinks
	if mediaLinks == nil {
		mediaLinks = map[string]string{}
	}

	return AlbumResponse{
		ID:         album.ID,
		Title:      album.Title,
		Artist:     album.Artist,
		Year:       album.Year,
		CoverURL:   album.CoverURL,
		Genres:     genres,
		MediaLinks: mediaLinks,
		Score:      album.Score,
		VideoDate:  album.VideoDate,
		VRef:       album.VRef,
		Verified:   toRatingResponse(album.Ratings.Verified),
		Unverified: toRatingResponse(album.Ratings.Unverified),
	}
}

func toRatingResponse(aggregate entity.RatingAggregate) RatingResponse {
	resp := RatingResponse{
		Average:     aggregate.Average,
		LastRatedAt: aggregate.LastRatedAt,
	}
	if aggregate.Count != nil {
		resp.Count = *aggregate.Count
	}

	return resp
}

func toAlbumPageResponse(page *entity.AlbumPage) AlbumPageResponse {
	albums := make([]AlbumResponse, 0, len(page.Albums))
	for _, album := range page.Albums {
		albums = append(albums, toAlbumResponse(album))
	}

	return AlbumPageResponse{
		Albums:   albums,
		Page:     page.Page,
		NextPage: page.NextPage,
	}
}

func toReviewResponse(review *entity.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID,
		AlbumID:    review.AlbumID,
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		IsVerified: review.IsVerified,
		CreatedAt:  review.CreatedAt,
	}
	if review.Author != nil {
		resp.Author = &AuthorResponse{
			Email:     review.Author.Email,
			FirstName: review.Author.FirstName,
			LastName:  review.Author.LastName,
			AvatarURL: review.Author.AvatarURL,
		}
	}

	return resp
}
