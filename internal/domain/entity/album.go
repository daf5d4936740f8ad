// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Album is a catalog entry. It is populated by external ingestion and is read-only
// for this service except for the rating aggregates maintained by the rating worker.
type Album struct {
	ID         int64    // Catalog identifier.
	ExternalID string   // Identifier in the upstream catalog source.
	Title      string   // Album title.
	Artist     string   // Credited artist.
	Year       *int     // Release year, when known.
	CoverURL   *string  // Cover image reference.
	Genres     []string // Genre tags in stored order.
	MediaLinks map[string]string
	Score      *string // Editorial score label.
	SearchText *string // Free text matched by catalog search.
	VideoDate  *string
	VRef       *string
	Ratings    AlbumRatings
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

// AlbumRatings holds the verified and unverified rating aggregates of an album.
type AlbumRatings struct {
	Verified   RatingAggregate
	Unverified RatingAggregate
}

// RatingAggregate is the average, count and most recent rating time for one reviewer class.
type RatingAggregate struct {
	Average     *float64
	Count       *int
	LastRatedAt *time.Time
}

// AlbumPage is one window of the album catalog.
// NextPage is nil when no further page exists.
type AlbumPage struct {
	Albums   []*Album
	Page     int
	NextPage *int
}

// HasMore reports whether another page can be requested.
func (p *AlbumPage) HasMore() bool {
	return p.NextPage != nil
}
