package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "spinrate/internal/delivery/context"
	"spinrate/internal/domain/entity"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"
	"spinrate/internal/errors"
	"spinrate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	UserSyncUC usecase.UserSyncUsecase
	Verifier   service.WebhookVerifier
	Logger     *slog.Logger
}

// WebhookHandler receives identity provider lifecycle webhooks
type WebhookHandler struct {
	userSyncUC usecase.UserSyncUsecase
	verifier   service.WebhookVerifier
	logger     *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		userSyncUC: params.UserSyncUC,
		verifier:   params.Verifier,
		logger:     params.Logger,
	}
}

// identityWebhookPayload is the provider's event envelope.
type identityWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		ID             string `json:"id"`
		EmailAddresses []struct {
			ID           string `json:"id"`
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
		PrimaryEmailAddressID *string `json:"primary_email_address_id"`
		EmailAddress          *string `json:"email_address"`
		FirstName             *string `json:"first_name"`
		LastName              *string `json:"last_name"`
		ImageURL              *string `json:"image_url"`
		Username              *string `json:"username"`
	} `json:"data"`
}

func (p *identityWebhookPayload) toEvent() *entity.IdentityEvent {
	event := &entity.IdentityEvent{
		Type: p.Type,
		Data: entity.IdentityEventData{
			ID:                    p.Data.ID,
			PrimaryEmailAddressID: p.Data.PrimaryEmailAddressID,
			EmailAddress:          p.Data.EmailAddress,
			FirstName:             p.Data.FirstName,
			LastName:              p.Data.LastName,
			ImageURL:              p.Data.ImageURL,
			Username:              p.Data.Username,
		},
	}
	for _, email := range p.Data.EmailAddresses {
		event.Data.EmailAddresses = append(event.Data.EmailAddresses, entity.IdentityEmail{
			ID:           email.ID,
			EmailAddress: email.EmailAddress,
		})
	}

	return event
}

// HandleIdentityEvent handles POST /api/auth/webhook.
// Signature failures and malformed payloads answer 400; sync failures answer 500 so the provider retries.
func (h *WebhookHandler) HandleIdentityEvent(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Warn("Failed to read webhook body", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid webhook payload"})
	}

	if err := h.verifier.Verify(payload, c.Request().Header); err != nil {
		logger.Warn("Webhook verification failed", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid webhook signature"})
	}

	var body identityWebhookPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		logger.Warn("Failed to parse webhook payload", slog.Any("error", err))

		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid webhook payload"})
	}

	if err := h.userSyncUC.HandleEvent(c.Request().Context(), body.toEvent()); err != nil {
		if errors.Is(err, domainerrors.ErrValidationFailed) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid webhook payload"})
		}
		logger.Error("Webhook failed", slog.String("event_type", body.Type), slog.Any("error", err))

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Webhook failed"})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
