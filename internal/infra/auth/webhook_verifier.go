package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spinrate/config"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"
	"spinrate/internal/errors"
)

// Svix delivery headers used by the identity provider's webhooks.
const (
	HeaderWebhookID        = "svix-id"
	HeaderWebhookTimestamp = "svix-timestamp"
	HeaderWebhookSignature = "svix-signature"

	webhookSecretPrefix    = "whsec_"
	webhookSignatureScheme = "v1"
)

// svixVerifier checks HMAC-SHA256 signatures over "<id>.<timestamp>.<payload>".
type svixVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewWebhookVerifier builds a verifier from the webhook configuration.
func NewWebhookVerifier(cfg *config.Config) (service.WebhookVerifier, error) {
	if cfg.Webhook == nil || cfg.Webhook.SigningSecret == "" {
		return nil, errors.New("webhook signing secret is required")
	}

	return newSvixVerifier(cfg.Webhook.SigningSecret, cfg.Webhook.Tolerance, time.Now)
}

func newSvixVerifier(signingSecret string, tolerance time.Duration, now func() time.Time) (*svixVerifier, error) {
	secret, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(signingSecret, webhookSecretPrefix))
	if err != nil {
		return nil, errors.Wrap(err, "webhook signing secret is not valid base64")
	}

	return &svixVerifier{
		secret:    secret,
		tolerance: tolerance,
		now:       now,
	}, nil
}

// Verify validates the delivery headers and signature for the raw payload.
func (v *svixVerifier) Verify(payload []byte, headers http.Header) error {
	msgID := headers.Get(HeaderWebhookID)
	timestamp := headers.Get(HeaderWebhookTimestamp)
	signatures := headers.Get(HeaderWebhookSignature)
	if msgID == "" || timestamp == "" || signatures == "" {
		return domainerrors.ErrInvalidWebhook.WrapMessage("missing webhook signature headers")
	}

	sentAt, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return domainerrors.ErrInvalidWebhook.WrapMessage("invalid webhook timestamp")
	}
	skew := v.now().Sub(time.Unix(sentAt, 0))
	if skew > v.tolerance || skew < -v.tolerance {
		return domainerrors.ErrInvalidWebhook.WrapMessage("webhook timestamp outside tolerance")
	}

	expected := v.sign(msgID, timestamp, payload)
	for _, candidate := range strings.Fields(signatures) {
		scheme, signature, ok := strings.Cut(candidate, ",")
		if !ok || scheme != webhookSignatureScheme {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(signature)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return domainerrors.ErrInvalidWebhook.WrapMessage("no matching webhook signature")
}

func (v *svixVerifier) sign(msgID, timestamp string, payload []byte) []byte {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(msgID))
	mac.Write([]byte("."))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}
