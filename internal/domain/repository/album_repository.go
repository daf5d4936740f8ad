// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"spinrate/internal/domain/entity"
)

// ErrAlbumNotFound is returned when no album matches the requested ID.
var ErrAlbumNotFound = errors.New("album not found")

// AlbumWindow selects an inclusive row range of the catalog, optionally filtered by search text.
type AlbumWindow struct {
	From   int
	To     int
	Search string
}

// AlbumRepository defines persistence operations on the album catalog.
type AlbumRepository interface {
	// FindWindow returns the albums in the window together with the exact number of rows
	// matching the filter.
	FindWindow(ctx context.Context, window AlbumWindow) ([]*entity.Album, int64, error)

	// FindByID retrieves a single album. Returns ErrAlbumNotFound when absent.
	FindByID(ctx context.Context, id int64) (*entity.Album, error)

	// UpdateRatings overwrites the rating aggregates of an album.
	UpdateRatings(ctx context.Context, id int64, ratings entity.AlbumRatings) error
}
