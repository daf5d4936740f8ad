// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"

	"spinrate/config"
	domainerrors "spinrate/internal/domain/errors"
	"spinrate/internal/domain/service"
	"spinrate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtVerifier validates session tokens minted by the external identity provider.
// Tokens are signed either with a shared HMAC secret or the provider's RSA key.
type jwtVerifier struct {
	key    any
	parser *jwt.Parser
}

// NewIdentityTokenVerifier builds a verifier from the identity configuration.
// Without any key configured every token is rejected, so only guest reviews are possible.
func NewIdentityTokenVerifier(cfg *config.Config) (service.IdentityTokenVerifier, error) {
	identity := cfg.Identity
	if identity == nil || (identity.HMACSecret == "" && identity.PublicKeyPEM == "") {
		return &jwtVerifier{}, nil
	}

	var (
		key    any
		method string
	)
	switch {
	case identity.PublicKeyPEM != "":
		publicKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(identity.PublicKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse identity public key")
		}
		key, method = publicKey, jwt.SigningMethodRS256.Alg()
	default:
		key, method = []byte(identity.HMACSecret), jwt.SigningMethodHS256.Alg()
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(identity.Leeway),
	}
	if identity.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(identity.Issuer))
	}

	return &jwtVerifier{
		key:    key,
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify parses and validates the token, returning its subject.
func (v *jwtVerifier) Verify(_ context.Context, token string) (string, error) {
	if v.parser == nil {
		return "", domainerrors.ErrInvalidIdentityToken.WrapMessage("session token verification is not configured")
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}); err != nil {
		return "", domainerrors.ErrInvalidIdentityToken.WrapMessage(err.Error())
	}

	if claims.Subject == "" {
		return "", domainerrors.ErrInvalidIdentityToken.WrapMessage("token has no subject")
	}

	return claims.Subject, nil
}
