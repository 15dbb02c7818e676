package auth

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/infrastructure/config"
)

// Common errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidClaims      = errors.New("invalid token claims")
	ErrTokenNotYetValid   = errors.New("token is not yet valid")
	ErrMissingSubject     = errors.New("missing sub in claims")
	ErrUnauthorizedIssuer = errors.New("token issuer is not accepted")
	ErrMissingSecret      = errors.New("jwt secret is not configured")
)

// Claims are the claims of an access token issued by the auth service.
// The subject is the owner id.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// OwnerID returns the owner the token was issued to
func (c *Claims) OwnerID() string {
	return c.Subject
}

// GetExpiresAtTime returns the token's expiration time as time.Time
func (c *Claims) GetExpiresAtTime() time.Time {
	if c.ExpiresAt != nil {
		return c.ExpiresAt.Time
	}
	return time.Time{}
}

// TokenVerifier verifies a bearer token and returns its claims
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// JWTService verifies HS256 tokens signed with the auth service's shared
// secret and mints tokens of the same shape for local development.
type JWTService struct {
	secret   []byte
	issuer   string
	audience string
	issuers  []string
	ttl      time.Duration
}

var _ TokenVerifier = (*JWTService)(nil)

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.AuthConfig) *JWTService {
	return &JWTService{
		secret:   []byte(cfg.JWTSecret),
		issuer:   cfg.DevTokenIssuer,
		audience: cfg.Audience,
		issuers:  cfg.Issuers,
		ttl:      cfg.DevTokenTTL,
	}
}

// GenerateTokenInput contains input for token generation
type GenerateTokenInput struct {
	Subject string
	Email   string
	Role    string
	TTL     time.Duration // zero uses the configured lifetime
}

// GenerateToken signs a token for local development
func (s *JWTService) GenerateToken(input GenerateTokenInput) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrMissingSecret
	}
	if input.Subject == "" {
		return "", time.Time{}, ErrMissingSubject
	}
	ttl := input.TTL
	if ttl <= 0 {
		ttl = s.ttl
	}
	if ttl <= 0 {
		ttl = time.Hour
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    s.issuer,
			Subject:   input.Subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Email: input.Email,
		Role:  input.Role,
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify validates an HS256 token and returns its claims
func (s *JWTService) Verify(_ context.Context, tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	}, parserOptions(s.audience)...)
	if err != nil {
		return nil, mapParseError(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if err := checkClaims(claims, s.issuers); err != nil {
		return nil, err
	}
	return claims, nil
}

func parserOptions(audience string) []jwt.ParserOption {
	opts := []jwt.ParserOption{jwt.WithLeeway(30 * time.Second)}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return opts
}

// mapParseError collapses jwt parse errors to the package errors
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrTokenNotYetValid
	default:
		return ErrInvalidToken
	}
}

// checkClaims enforces the subject and the issuer whitelist
func checkClaims(claims *Claims, issuers []string) error {
	if claims.Subject == "" {
		return ErrMissingSubject
	}
	if len(issuers) > 0 && !slices.Contains(issuers, claims.Issuer) {
		return ErrUnauthorizedIssuer
	}
	return nil
}
