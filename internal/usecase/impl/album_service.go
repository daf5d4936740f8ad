package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "spinrate/internal/delivery/context"
	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/repository"
	"spinrate/internal/domain/service"
	"spinrate/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// albumService implements the AlbumUsecase interface.
type albumService struct {
	albumRepo repository.AlbumRepository
	qrService service.QRCodeService
	logger    *slog.Logger
}

// AlbumServiceParams holds dependencies for AlbumService, injected by Fx.
type AlbumServiceParams struct {
	fx.In

	AlbumRepo repository.AlbumRepository
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewAlbumService is the constructor for albumService.
func NewAlbumService(params AlbumServiceParams) usecase.AlbumUsecase {
	return &albumService{
		albumRepo: params.AlbumRepo,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (srv *albumService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// maxAlbumPage is the last page whose window bounds fit in an int.
const maxAlbumPage = math.MaxInt/constants.AlbumPageSize - 1

// FetchAlbumPage reads rows [page*50, page*50+49]. nextPage is nil once (page+1)*50 reaches the total.
func (srv *albumService) FetchAlbumPage(ctx context.Context, page int, search string) *entity.AlbumPage {
	if page < 0 {
		page = 0
	}
	// Past maxAlbumPage the window bounds overflow; no catalog is that large.
	if page > maxAlbumPage {
		return &entity.AlbumPage{Albums: []*entity.Album{}, Page: page}
	}

	from := page * constants.AlbumPageSize
	window := repository.AlbumWindow{
		From:   from,
		To:     from + constants.AlbumPageSize - 1,
		Search: search,
	}

	albums, total, err := srv.albumRepo.FindWindow(ctx, window)
	if err != nil {
		srv.log(ctx).Error("Failed to fetch album page, returning empty page",
			slog.Int("page", page),
			slog.String("search", search),
			slog.Any("error", err),
		)

		return &entity.AlbumPage{Albums: []*entity.Album{}, Page: page}
	}

	result := &entity.AlbumPage{Albums: albums, Page: page}
	if result.Albums == nil {
		result.Albums = []*entity.Album{}
	}
	if int64((page+1)*constants.AlbumPageSize) < total {
		next := page + 1
		result.NextPage = &next
	}

	return result
}

// FetchAlbum retrieves one album.
func (srv *albumService) FetchAlbum(ctx context.Context, albumID int64) (*entity.Album, error) {
	album, err := srv.albumRepo.FindByID(ctx, albumID)
	if errors.Is(err, repository.ErrAlbumNotFound) {
		return nil, domainerrors.ErrAlbumNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch album")
	}

	return album, nil
}

// ShareQR renders the share code of an existing album.
func (srv *albumService) ShareQR(ctx context.Context, albumID int64) ([]byte, error) {
	if _, err := srv.FetchAlbum(ctx, albumID); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateAlbumQR(albumID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate album QR code")
	}

	return png, nil
}
