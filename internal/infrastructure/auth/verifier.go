package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/owneriq/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// DemoVerifier accepts the fixed demo token and maps it to the demo user
type DemoVerifier struct {
	token  string
	userID string
	next   TokenVerifier
}

var _ TokenVerifier = (*DemoVerifier)(nil)

// NewDemoVerifier accepts token as userID and hands every other token to next
func NewDemoVerifier(token, userID string, next TokenVerifier) *DemoVerifier {
	return &DemoVerifier{token: token, userID: userID, next: next}
}

// Verify implements TokenVerifier
func (d *DemoVerifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if d.token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(d.token)) == 1 {
		claims := &Claims{Role: "demo"}
		claims.Subject = d.userID
		return claims, nil
	}
	if d.next == nil {
		return nil, ErrInvalidToken
	}
	return d.next.Verify(ctx, token)
}

// Close releases the wrapped verifier
func (d *DemoVerifier) Close() {
	if c, ok := d.next.(Closer); ok {
		c.Close()
	}
}

// Closer is implemented by verifiers holding background resources
type Closer interface {
	Close()
}

// NewVerifier builds the verifier chain from configuration: JWKS when a key
// set URL is configured, otherwise the HS256 shared secret; the demo token
// is accepted in front of either when demo mode is enabled.
func NewVerifier(ctx context.Context, authCfg config.AuthConfig, demoCfg config.DemoConfig, logger *zap.Logger) (TokenVerifier, error) {
	var verifier TokenVerifier
	switch {
	case authCfg.JWKSURL != "":
		jwks, err := NewJWKSVerifier(ctx, authCfg.JWKSURL, authCfg.Issuers, authCfg.Audience)
		if err != nil {
			return nil, err
		}
		logger.Info("Verifying bearer tokens with JWKS", zap.String("jwks_url", authCfg.JWKSURL))
		verifier = jwks
	case authCfg.JWTSecret != "":
		logger.Info("Verifying bearer tokens with the shared HS256 secret")
		verifier = NewJWTService(authCfg)
	case !demoCfg.Enabled:
		return nil, errors.New("auth.jwt_secret or auth.jwks_url must be configured")
	}

	if demoCfg.Enabled {
		if demoCfg.Token == "" || demoCfg.UserID == "" {
			return nil, errors.New("demo mode requires demo.token and demo.user_id")
		}
		logger.Warn("Demo token accepted", zap.String("demo_user_id", demoCfg.UserID))
		verifier = NewDemoVerifier(demoCfg.Token, demoCfg.UserID, verifier)
	}
	return verifier, nil
}
