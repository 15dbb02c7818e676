package auth

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// JWKSVerifier validates RS256/ES256 tokens against the public keys
// published by the auth service. Keys are refreshed in the background until
// Close is called.
type JWKSVerifier struct {
	jwks     keyfunc.Keyfunc
	issuers  []string
	audience string
	cancel   context.CancelFunc
}

var _ TokenVerifier = (*JWKSVerifier)(nil)

// NewJWKSVerifier fetches the key set at jwksURL
func NewJWKSVerifier(ctx context.Context, jwksURL string, issuers []string, audience string) (*JWKSVerifier, error) {
	refreshCtx, cancel := context.WithCancel(ctx)
	jwks, err := keyfunc.NewDefaultCtx(refreshCtx, []string{jwksURL})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create JWKS client for %s: %w", jwksURL, err)
	}
	return &JWKSVerifier{jwks: jwks, issuers: issuers, audience: audience, cancel: cancel}, nil
}

// NewJWKSVerifierFromKeyfunc wraps an already loaded key set
func NewJWKSVerifierFromKeyfunc(jwks keyfunc.Keyfunc, issuers []string, audience string) *JWKSVerifier {
	return &JWKSVerifier{jwks: jwks, issuers: issuers, audience: audience, cancel: func() {}}
}

// Verify validates the token signature and claims
func (v *JWKSVerifier) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
		default:
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.jwks.KeyfuncCtx(ctx)(token)
	}, parserOptions(v.audience)...)
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if err := checkClaims(claims, v.issuers); err != nil {
		return nil, err
	}
	return claims, nil
}

// Close stops the background key refresh
func (v *JWKSVerifier) Close() {
	v.cancel()
}
