package service

import (
	"context"
	"net/http"
)

// IdentityTokenVerifier validates a session token issued by the external identity provider.
type IdentityTokenVerifier interface {
	// Verify returns the external identity ID (the token subject).
	Verify(ctx context.Context, token string) (string, error)
}

// WebhookVerifier authenticates a webhook delivery from the identity provider.
type WebhookVerifier interface {
	// Verify checks the signature headers against the raw payload.
	Verify(payload []byte, headers http.Header) error
}
