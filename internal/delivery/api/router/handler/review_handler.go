package handler

import (
	"log/slog"
	"net/http"

	"spinrate/internal/delivery/api/middleware"
	"spinrate/internal/delivery/api/response"
	"spinrate/internal/delivery/api/validator"
	deliverycontext "spinrate/internal/delivery/context"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"
	"spinrate/internal/errors"
	"spinrate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Guests   service.GuestStoreProvider
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	guests   service.GuestStoreProvider
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		guests:   params.Guests,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest represents the request body for submitting a review.
// ReviewText is ignored for guest submissions.
type SubmitReviewRequest struct {
	Rating     int     `json:"rating" validate:"min=1,max=5"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=5000"`
}

// ListReviews handles GET /albums/:id/reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	albumID, ok := parseAlbumID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid album ID")
	}

	reviews, err := h.reviewUC.FetchReviews(c.Request().Context(), albumID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	items := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		items = append(items, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, items)
}

// SubmitReview handles POST /albums/:id/reviews for signed-in users and guests
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	albumID, ok := parseAlbumID(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid album ID")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) && verr.Has("rating") {
			return h.renderSubmissionError(c, domainerrors.ErrInvalidRating)
		}
		if errors.As(err, &verr) {
			return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), verr.Fields)
		}

		return errors.WithStack(err)
	}

	input := &usecase.SubmitReviewInput{
		AlbumID:    albumID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if externalID, ok := middleware.GetExternalIdentityID(c); ok {
		input.ExternalIdentityID = externalID
	}

	review, err := h.reviewUC.SubmitReview(c.Request().Context(), input, h.guests.For(c.Response(), c.Request()))
	if err != nil {
		return h.renderSubmissionError(c, err)
	}

	return response.Success(c, http.StatusCreated, toReviewResponse(review))
}

// renderSubmissionError keeps the status and code of the failure. Only ALREADY_REVIEWED
// and INVALID_RATING carry their own message; everything else shows the generic one.
func (h *ReviewHandler) renderSubmissionError(c echo.Context, err error) error {
	generic := domainerrors.ErrReviewSubmissionFailed

	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Review submission failed", slog.Any("error", err))

		return response.Error(c, generic.HTTPCode(), generic.ErrorCode(), generic.Message(), nil)
	}

	switch {
	case errors.IsAny(err, domainerrors.ErrAlreadyReviewed, domainerrors.ErrInvalidRating):
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	case appErr.HTTPCode() >= http.StatusInternalServerError:
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Review submission failed", slog.Any("error", err))

		return response.Error(c, generic.HTTPCode(), generic.ErrorCode(), generic.Message(), nil)
	default:
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), generic.Message(), nil)
	}
}
