package impl

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	mockRepo "spinrate/internal/mocks/repository"
	mockSvc "spinrate/internal/mocks/service"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type albumServiceFixtures struct {
	service   usecase.AlbumUsecase
	albumRepo *mockRepo.MockAlbumRepository
	qrService *mockSvc.MockQRCodeService
}

func createTestAlbumService(t *testing.T) albumServiceFixtures {
	albumRepo := mockRepo.NewMockAlbumRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAlbumService(AlbumServiceParams{
		AlbumRepo: albumRepo,
		QRService: qrService,
		Logger:    logger,
	})

	return albumServiceFixtures{
		service:   service,
		albumRepo: albumRepo,
		qrService: qrService,
	}
}

func albumsFrom(first, n int) []*entity.Album {
	albums := make([]*entity.Album, 0, n)
	for i := 0; i < n; i++ {
		albums = append(albums, &entity.Album{ID: int64(first + i + 1)})
	}

	return albums
}

func TestAlbumService_FetchAlbumPage(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		search       string
		total        int64
		wantWindow   repository.AlbumWindow
		wantCount    int
		wantNextPage *int
		skipRead     bool
	}{
		{
			name:         "first of three pages",
			page:         0,
			total:        120,
			wantWindow:   repository.AlbumWindow{From: 0, To: 49},
			wantCount:    50,
			wantNextPage: intPtr(1),
		},
		{
			name:         "last partial page",
			page:         2,
			total:        120,
			wantWindow:   repository.AlbumWindow{From: 100, To: 149},
			wantCount:    20,
			wantNextPage: nil,
		},
		{
			name:         "exact multiple has no next page",
			page:         1,
			total:        100,
			wantWindow:   repository.AlbumWindow{From: 50, To: 99},
			wantCount:    50,
			wantNextPage: nil,
		},
		{
			name:         "search is forwarded",
			page:         0,
			search:       "radio",
			total:        3,
			wantWindow:   repository.AlbumWindow{From: 0, To: 49, Search: "radio"},
			wantCount:    3,
			wantNextPage: nil,
		},
		{
			name:         "negative page reads the first window",
			page:         -3,
			total:        51,
			wantWindow:   repository.AlbumWindow{From: 0, To: 49},
			wantCount:    50,
			wantNextPage: intPtr(1),
		},
		{
			name:         "page beyond any catalog is empty",
			page:         math.MaxInt / 25,
			total:        120,
			wantCount:    0,
			wantNextPage: nil,
			skipRead:     true,
		},
		{
			name:         "largest page with an int window still reads",
			page:         math.MaxInt/50 - 1,
			total:        120,
			wantWindow:   repository.AlbumWindow{From: (math.MaxInt/50 - 1) * 50, To: (math.MaxInt/50-1)*50 + 49},
			wantCount:    0,
			wantNextPage: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAlbumService(t)

			ctx := context.Background()
			if !tt.skipRead {
				fx.albumRepo.EXPECT().
					FindWindow(ctx, tt.wantWindow).
					Return(albumsFrom(tt.wantWindow.From, tt.wantCount), tt.total, nil)
			}

			page := fx.service.FetchAlbumPage(ctx, tt.page, tt.search)

			require.NotNil(t, page)
			assert.Equal(t, max(tt.page, 0), page.Page)
			assert.Len(t, page.Albums, tt.wantCount)
			assert.LessOrEqual(t, len(page.Albums), 50)
			if tt.wantNextPage == nil {
				assert.Nil(t, page.NextPage)
				assert.False(t, page.HasMore())
			} else {
				require.NotNil(t, page.NextPage)
				assert.Equal(t, *tt.wantNextPage, *page.NextPage)
			}
		})
	}
}

func TestAlbumService_FetchAlbumPage_EmptyCatalog(t *testing.T) {
	fx := createTestAlbumService(t)

	ctx := context.Background()
	fx.albumRepo.EXPECT().FindWindow(ctx, repository.AlbumWindow{From: 0, To: 49}).Return(nil, int64(0), nil)

	page := fx.service.FetchAlbumPage(ctx, 0, "")

	assert.NotNil(t, page.Albums)
	assert.Empty(t, page.Albums)
	assert.Nil(t, page.NextPage)
}

func TestAlbumService_FetchAlbumPage_ReadFailureDegrades(t *testing.T) {
	fx := createTestAlbumService(t)

	ctx := context.Background()
	fx.albumRepo.EXPECT().
		FindWindow(ctx, repository.AlbumWindow{From: 150, To: 199}).
		Return(nil, int64(0), errors.New("statement timeout"))

	page := fx.service.FetchAlbumPage(ctx, 3, "")

	require.NotNil(t, page)
	assert.Empty(t, page.Albums)
	assert.Nil(t, page.NextPage)
	assert.Equal(t, 3, page.Page)
}

func TestAlbumService_FetchAlbum(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestAlbumService(t)

		ctx := context.Background()
		fx.albumRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Album{ID: 5, Title: "Blue"}, nil)

		album, err := fx.service.FetchAlbum(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Blue", album.Title)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestAlbumService(t)

		ctx := context.Background()
		fx.albumRepo.EXPECT().FindByID(ctx, int64(5)).Return(nil, repository.ErrAlbumNotFound)

		_, err := fx.service.FetchAlbum(ctx, 5)

		assert.ErrorIs(t, err, domainerrors.ErrAlbumNotFound)
	})
}

func TestAlbumService_ShareQR(t *testing.T) {
	t.Run("renders for existing album", func(t *testing.T) {
		fx := createTestAlbumService(t)

		ctx := context.Background()
		fx.albumRepo.EXPECT().FindByID(ctx, int64(5)).Return(&entity.Album{ID: 5}, nil)
		fx.qrService.EXPECT().GenerateAlbumQR(int64(5)).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.ShareQR(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("unknown album is not encoded", func(t *testing.T) {
		fx := createTestAlbumService(t)

		ctx := context.Background()
		fx.albumRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrAlbumNotFound)

		_, err := fx.service.ShareQR(ctx, 9)

		assert.ErrorIs(t, err, domainerrors.ErrAlbumNotFound)
	})
}

func intPtr(v int) *int { return &v }
