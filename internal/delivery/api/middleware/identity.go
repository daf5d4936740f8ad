package middleware

import (
	"log/slog"
	"strings"

	"spinrate/internal/delivery/api/response"
	deliverycontext "spinrate/internal/delivery/context"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyExternalIdentityID = "externalIdentityID"

// IdentityMiddleware resolves an optional bearer session token to the external identity ID.
type IdentityMiddleware struct {
	verifier service.IdentityTokenVerifier
	logger   *slog.Logger
}

// NewIdentityMiddleware is the constructor for IdentityMiddleware.
func NewIdentityMiddleware(verifier service.IdentityTokenVerifier, logger *slog.Logger) *IdentityMiddleware {
	return &IdentityMiddleware{verifier: verifier, logger: logger}
}

// OptionalIdentity lets anonymous requests through untouched.
// A present but invalid token is rejected rather than downgraded to a guest.
func (m *IdentityMiddleware) OptionalIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return next(c)
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		externalID, err := m.verifier.Verify(ctx, strings.TrimSpace(token))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rejected session token", slog.Any("error", err))

			return response.Unauthorized(c, domainerrors.ErrInvalidIdentityToken.ErrorCode(), domainerrors.ErrInvalidIdentityToken.Message())
		}

		c.Set(keyExternalIdentityID, externalID)

		return next(c)
	}
}

// GetExternalIdentityID returns the verified external identity of the request, if any.
func GetExternalIdentityID(c echo.Context) (string, bool) {
	externalID, ok := c.Get(keyExternalIdentityID).(string)

	return externalID, ok && externalID != ""
}
