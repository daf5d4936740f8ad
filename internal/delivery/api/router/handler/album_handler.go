package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"spinrate/internal/delivery/api/response"
	"spinrate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlbumHandlerParams holds dependencies for AlbumHandler, injected by Fx.
type AlbumHandlerParams struct {
	fx.In

	AlbumUC usecase.AlbumUsecase
	Logger  *slog.Logger
}

// AlbumHandler holds dependencies for catalog handlers
type AlbumHandler struct {
	albumUC usecase.AlbumUsecase
	logger  *slog.Logger
}

// NewAlbumHandler is the constructor for AlbumHandler
func NewAlbumHandler(params AlbumHandlerParams) *AlbumHandler {
	return &AlbumHandler{
		albumUC: params.AlbumUC,
		logger:  params.Logger,
	}
}

// ListAlbums handles GET /albums?page=&search=
func (h *AlbumHandler) ListAlbums(c echo.Context) error {
	page := 0
	if raw := strings.TrimSpace(c.QueryParam("page")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_PAGE", "Page must be a whole number")
		}
		page = parsed
	}

	albumPage := h.albumUC.FetchAlbumPage(c.Request().Context(), page, c.QueryParam("search"))

	return response.Success(c, http.StatusOK, toAlbumPageResponse(albumPage))
}

// GetAlbum handles GET /albums/:id
func (h *AlbumHandler) GetAlbum(c echo.Context) error {
	albumID, ok := parseAlbumID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid album ID")
	}

	album, err := h.albumUC.FetchAlbum(c.Request().Context(), albumID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAlbumResponse(album))
}

// GetAlbumQR handles GET /albums/:id/qr
func (h *AlbumHandler) GetAlbumQR(c echo.Context) error {
	albumID, ok := parseAlbumID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid album ID")
	}

	png, err := h.albumUC.ShareQR(c.Request().Context(), albumID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=album-"+strconv.FormatInt(albumID, 10)+".png")

	return c.Blob(http.StatusOK, "image/png", png)
}

func parseAlbumID(c echo.Context) (int64, bool) {
	albumID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || albumID <= 0 {
		return 0, false
	}

	return albumID, true
}
