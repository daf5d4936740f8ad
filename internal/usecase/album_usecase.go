// Package usecase defines the application's use cases consumed by the delivery layer.
package usecase

import (
	"context"

	"spinrate/internal/domain/entity"
)

// AlbumUsecase defines the interface for browsing the album catalog
type AlbumUsecase interface {
	// FetchAlbumPage returns one zero-based page of the catalog, optionally filtered by a
	// case-insensitive substring of the album search text. Read failures degrade to an empty
	// page without a next page; this method never fails.
	FetchAlbumPage(ctx context.Context, page int, search string) *entity.AlbumPage

	// FetchAlbum retrieves a single album with its rating aggregates
	FetchAlbum(ctx context.Context, albumID int64) (*entity.Album, error)

	// ShareQR renders a PNG QR code linking to the album page
	ShareQR(ctx context.Context, albumID int64) ([]byte, error)
}
