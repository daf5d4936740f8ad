package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"spinrate/config"
	apimiddleware "spinrate/internal/delivery/api/middleware"
	"spinrate/internal/delivery/api/response"
	"spinrate/internal/delivery/api/router/handler"
	"spinrate/internal/delivery/api/validator"
	deliverymiddleware "spinrate/internal/delivery/middleware"
	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"
	"spinrate/internal/infra/guest"
	mockSvc "spinrate/internal/mocks/service"
	mockUsecase "spinrate/internal/mocks/usecase"
	"spinrate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixtures struct {
	e               *echo.Echo
	albumUC         *mockUsecase.MockAlbumUsecase
	reviewUC        *mockUsecase.MockReviewUsecase
	userSyncUC      *mockUsecase.MockUserSyncUsecase
	tokenVerifier   *mockSvc.MockIdentityTokenVerifier
	webhookVerifier *mockSvc.MockWebhookVerifier
}

func createTestAPI(t *testing.T) apiFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.RateLimit = &config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100}

	albumUC := mockUsecase.NewMockAlbumUsecase(t)
	reviewUC := mockUsecase.NewMockReviewUsecase(t)
	userSyncUC := mockUsecase.NewMockUserSyncUsecase(t)
	tokenVerifier := mockSvc.NewMockIdentityTokenVerifier(t)
	webhookVerifier := mockSvc.NewMockWebhookVerifier(t)

	rateLimit := deliverymiddleware.NewRateLimitMiddleware(cfg)
	t.Cleanup(rateLimit.Stop)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	NewRouter(RouterParams{
		AlbumHandler: handler.NewAlbumHandler(handler.AlbumHandlerParams{AlbumUC: albumUC, Logger: logger}),
		ReviewHandler: handler.NewReviewHandler(handler.ReviewHandlerParams{
			ReviewUC: reviewUC,
			Guests:   guest.NewCookieStoreFactory(cfg),
			Logger:   logger,
		}),
		WebhookHandler: handler.NewWebhookHandler(handler.WebhookHandlerParams{
			UserSyncUC: userSyncUC,
			Verifier:   webhookVerifier,
			Logger:     logger,
		}),
		IdentityMiddleware: apimiddleware.NewIdentityMiddleware(tokenVerifier, logger),
		RateLimit:          rateLimit,
	}).RegisterRoutes(e)

	return apiFixtures{
		e:               e,
		albumUC:         albumUC,
		reviewUC:        reviewUC,
		userSyncUC:      userSyncUC,
		tokenVerifier:   tokenVerifier,
		webhookVerifier: webhookVerifier,
	}
}

func (fx apiFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	fx.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_ListAlbums(t *testing.T) {
	fx := createTestAPI(t)

	next := 2
	fx.albumUC.EXPECT().
		FetchAlbumPage(mock.Anything, 1, "radio").
		Return(&entity.AlbumPage{
			Albums:   []*entity.Album{{ID: 51, Title: "OK Computer", Artist: "Radiohead"}},
			Page:     1,
			NextPage: &next,
		})

	rec := fx.do(http.MethodGet, "/api/v1/albums?page=1&search=radio", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page handler.AlbumPageResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	require.Len(t, page.Albums, 1)
	assert.Equal(t, "OK Computer", page.Albums[0].Title)
	assert.Equal(t, []string{}, page.Albums[0].Genres)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 2, *page.NextPage)
}

func TestRouter_ListAlbums_LastPageHasNullNextPage(t *testing.T) {
	fx := createTestAPI(t)

	fx.albumUC.EXPECT().FetchAlbumPage(mock.Anything, 0, "").Return(&entity.AlbumPage{Albums: []*entity.Album{}})

	rec := fx.do(http.MethodGet, "/api/v1/albums", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"next_page":null`)
	assert.Contains(t, rec.Body.String(), `"albums":[]`)
}

func TestRouter_ListAlbums_InvalidPage(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/api/v1/albums?page=two", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PAGE", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_GetAlbum_NotFound(t *testing.T) {
	fx := createTestAPI(t)

	fx.albumUC.EXPECT().FetchAlbum(mock.Anything, int64(5)).Return(nil, domainerrors.ErrAlbumNotFound)

	rec := fx.do(http.MethodGet, "/api/v1/albums/5", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ALBUM_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_GetAlbumQR(t *testing.T) {
	fx := createTestAPI(t)

	fx.albumUC.EXPECT().ShareQR(mock.Anything, int64(5)).Return([]byte("png-bytes"), nil)

	rec := fx.do(http.MethodGet, "/api/v1/albums/5/qr", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestRouter_SubmitReview_GuestGetsCookie(t *testing.T) {
	fx := createTestAPI(t)

	text := "ignored for guests"
	fx.reviewUC.EXPECT().
		SubmitReview(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitReviewInput) bool {
			return input.AlbumID == 9 && input.Rating == 4 && input.ExternalIdentityID == ""
		}), mock.Anything).
		RunAndReturn(func(ctx context.Context, input *usecase.SubmitReviewInput, guests service.GuestStore) (*entity.Review, error) {
			require.NoError(t, guests.Save(ctx, "3f1c2d4e-guest-id"))
			guestID := "3f1c2d4e-guest-id"

			return &entity.Review{ID: 1, AlbumID: input.AlbumID, Rating: input.Rating, GuestIdentifier: &guestID, CreatedAt: time.Now()}, nil
		})

	rec := fx.do(http.MethodPost, "/api/v1/albums/9/reviews", `{"rating":4,"review_text":"`+text+`"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), config.DefaultGuestCookieName+"=3f1c2d4e-guest-id")
	assert.Equal(t, "3f1c2d4e-guest-id", rec.Header().Get(guest.HeaderGuestID))

	var review handler.ReviewResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &review))
	assert.False(t, review.IsVerified)
	assert.Nil(t, review.Author)
}

func TestRouter_SubmitReview_VerifiedIdentity(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenVerifier.EXPECT().Verify(mock.Anything, "session-token").Return("user_abc", nil)
	fx.reviewUC.EXPECT().
		SubmitReview(mock.Anything, mock.MatchedBy(func(input *usecase.SubmitReviewInput) bool {
			return input.ExternalIdentityID == "user_abc" && input.ReviewText != nil && *input.ReviewText == "Loved it"
		}), mock.Anything).
		Return(&entity.Review{ID: 2, AlbumID: 9, Rating: 5, IsVerified: true}, nil)

	rec := fx.do(http.MethodPost, "/api/v1/albums/9/reviews", `{"rating":5,"review_text":"Loved it"}`,
		map[string]string{echo.HeaderAuthorization: "Bearer session-token"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("Set-Cookie"))
}

func TestRouter_SubmitReview_InvalidSessionToken(t *testing.T) {
	fx := createTestAPI(t)

	fx.tokenVerifier.EXPECT().Verify(mock.Anything, "expired").Return("", domainerrors.ErrInvalidIdentityToken)

	rec := fx.do(http.MethodPost, "/api/v1/albums/9/reviews", `{"rating":5}`,
		map[string]string{echo.HeaderAuthorization: "Bearer expired"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_IDENTITY_TOKEN", decodeEnvelope(t, rec).Error.Code)
}

func TestRouter_SubmitReview_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		usecaseErr  error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "rating out of range",
			body:        `{"rating":7}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_RATING",
			wantMessage: domainerrors.ErrInvalidRating.Message(),
		},
		{
			name:        "missing rating",
			body:        `{}`,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_RATING",
			wantMessage: domainerrors.ErrInvalidRating.Message(),
		},
		{
			name:        "already reviewed",
			body:        `{"rating":3}`,
			usecaseErr:  domainerrors.ErrAlreadyReviewed,
			wantStatus:  http.StatusConflict,
			wantCode:    "ALREADY_REVIEWED",
			wantMessage: "You've already reviewed this album. Only one review per album is allowed.",
		},
		{
			name:        "no profile shows the generic message",
			body:        `{"rating":3}`,
			usecaseErr:  domainerrors.ErrNoProfile,
			wantStatus:  http.StatusForbidden,
			wantCode:    "NO_PROFILE",
			wantMessage: "Something went wrong. Please try again later.",
		},
		{
			name:        "store failure",
			body:        `{"rating":3}`,
			usecaseErr:  errors.New("connection reset by peer"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "REVIEW_SUBMISSION_FAILED",
			wantMessage: "Something went wrong. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAPI(t)

			if tt.usecaseErr != nil {
				fx.reviewUC.EXPECT().
					SubmitReview(mock.Anything, mock.AnythingOfType("*usecase.SubmitReviewInput"), mock.Anything).
					Return(nil, tt.usecaseErr)
			}

			rec := fx.do(http.MethodPost, "/api/v1/albums/9/reviews", tt.body, nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.Equal(t, tt.wantMessage, env.Error.Message)
		})
	}
}

func TestRouter_ListReviews(t *testing.T) {
	fx := createTestAPI(t)

	email := "ada@example.com"
	fx.reviewUC.EXPECT().FetchReviews(mock.Anything, int64(9)).Return([]*entity.Review{
		{ID: 2, AlbumID: 9, Rating: 5, IsVerified: true, Author: &entity.ReviewAuthor{Email: &email}},
		{ID: 1, AlbumID: 9, Rating: 2},
	}, nil)

	rec := fx.do(http.MethodGet, "/api/v1/albums/9/reviews", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var reviews []handler.ReviewResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &reviews))
	require.Len(t, reviews, 2)
	require.NotNil(t, reviews[0].Author)
	assert.Equal(t, email, *reviews[0].Author.Email)
	assert.Nil(t, reviews[1].Author)
}

const userCreatedPayload = `{
	"type": "user.created",
	"data": {
		"id": "user_123",
		"email_addresses": [{"id": "idn_a", "email_address": "x@y.com"}],
		"primary_email_address_id": "idn_a",
		"first_name": "Ada",
		"username": "ada"
	}
}`

func TestRouter_IdentityWebhook(t *testing.T) {
	t.Run("created event is synced", func(t *testing.T) {
		fx := createTestAPI(t)

		fx.webhookVerifier.EXPECT().Verify([]byte(userCreatedPayload), mock.AnythingOfType("http.Header")).Return(nil)
		fx.userSyncUC.EXPECT().
			HandleEvent(mock.Anything, mock.MatchedBy(func(event *entity.IdentityEvent) bool {
				email := event.Data.PrimaryEmail()

				return event.Type == constants.IdentityEventCreated && event.Data.ID == "user_123" &&
					email != nil && *email == "x@y.com"
			})).
			Return(nil)

		rec := fx.do(http.MethodPost, "/api/auth/webhook", userCreatedPayload, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAPI(t)

		fx.webhookVerifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidWebhook)

		rec := fx.do(http.MethodPost, "/api/auth/webhook", userCreatedPayload, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sync failure", func(t *testing.T) {
		fx := createTestAPI(t)

		fx.webhookVerifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil)
		fx.userSyncUC.EXPECT().HandleEvent(mock.Anything, mock.Anything).Return(errors.New("deadlock"))

		rec := fx.do(http.MethodPost, "/api/auth/webhook", userCreatedPayload, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Webhook failed"}`, rec.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		fx := createTestAPI(t)

		fx.webhookVerifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil)

		rec := fx.do(http.MethodPost, "/api/auth/webhook", `{"type":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Health(t *testing.T) {
	fx := createTestAPI(t)

	rec := fx.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}
