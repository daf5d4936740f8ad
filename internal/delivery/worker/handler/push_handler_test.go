package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spinrate/config"
	"spinrate/internal/domain/constants"
	"spinrate/internal/domain/entity"
	"spinrate/internal/domain/repository"
	"spinrate/internal/domain/service"
	mockUsecase "spinrate/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockRatingUsecase) {
	t.Helper()

	ratingUC := mockUsecase.NewMockRatingUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}
	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		RatingUC: ratingUC,
	})

	return h, ratingUC
}

func pushBody(t *testing.T, attributes map[string]string, data string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/ratings"
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(raw)
}

func encodeEvent(t *testing.T, event service.ReviewSubmittedEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_RecomputesRatings(t *testing.T) {
	h, ratingUC := newTestPushHandler(t, nil)

	avg := 4.0
	ratingUC.EXPECT().
		RecomputeAlbumRatings(mock.Anything, int64(7)).
		Run(func(ctx context.Context, _ int64) {
			assert.NotNil(t, ctx)
		}).
		Return(&entity.AlbumRatings{Verified: entity.RatingAggregate{Average: &avg}}, nil).
		Once()

	body := pushBody(t,
		map[string]string{"event_type": constants.ReviewEventSubmitted, "request_id": "req-1"},
		encodeEvent(t, service.ReviewSubmittedEvent{ReviewID: 11, AlbumID: 7, Rating: 4, IsVerified: true}),
	)
	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreFailureIsRetried(t *testing.T) {
	h, ratingUC := newTestPushHandler(t, nil)

	ratingUC.EXPECT().
		RecomputeAlbumRatings(mock.Anything, int64(7)).
		Return(nil, errors.New("connection reset")).
		Once()

	body := pushBody(t, nil, encodeEvent(t, service.ReviewSubmittedEvent{ReviewID: 11, AlbumID: 7}))
	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MissingAlbumIsAcknowledged(t *testing.T) {
	h, ratingUC := newTestPushHandler(t, nil)

	ratingUC.EXPECT().
		RecomputeAlbumRatings(mock.Anything, int64(7)).
		Return(nil, repository.ErrAlbumNotFound).
		Once()

	body := pushBody(t, nil, encodeEvent(t, service.ReviewSubmittedEvent{ReviewID: 11, AlbumID: 7}))
	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_RejectsMalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{
			name: "not json",
			body: "{",
			want: http.StatusBadRequest,
		},
		{
			name: "data not base64",
			body: `{"message":{"data":"%%%"}}`,
			want: http.StatusBadRequest,
		},
		{
			name: "data not an event",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
			want: http.StatusBadRequest,
		},
		{
			name: "event without album is dropped",
			body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte(`{"review_id":3}`)) + `"}}`,
			want: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestPushHandler_SkipsOtherEventTypes(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	body := pushBody(t, map[string]string{"event_type": "album.imported"}, "")
	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: true}}

	t.Run("missing header", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)

		rec := servePush(h, pushBody(t, nil, ""), nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}

		rec := servePush(h, pushBody(t, nil, ""), http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, ratingUC := newTestPushHandler(t, cfg)
		var gotAudience string
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			gotAudience = audience

			return &idtoken.Payload{
				Issuer: "https://accounts.google.com",
				Claims: map[string]interface{}{"email_verified": true},
			}, nil
		}
		ratingUC.EXPECT().
			RecomputeAlbumRatings(mock.Anything, int64(2)).
			Return(&entity.AlbumRatings{}, nil).
			Once()

		body := pushBody(t, nil, encodeEvent(t, service.ReviewSubmittedEvent{ReviewID: 1, AlbumID: 2}))
		rec := servePush(h, body, http.Header{"Authorization": {"Bearer token"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestNewPushHandler_VerifyPushAuth(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{
			name: "local provider",
			cfg:  &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
			want: false,
		},
		{
			name: "google in develop",
			cfg: func() *config.Config {
				cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
				cfg.Env.Env = constants.EnvDevelop

				return cfg
			}(),
			want: false,
		},
		{
			name: "google in production",
			cfg: func() *config.Config {
				cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
				cfg.Env.Env = "production"

				return cfg
			}(),
			want: true,
		},
		{
			name: "forced by worker config",
			cfg:  &config.Config{Worker: &config.WorkerConfig{VerifyPushAuth: true}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, tt.cfg)

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}
