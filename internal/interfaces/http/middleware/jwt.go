package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/infrastructure/auth"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	JWTClaimsKey = "jwt_claims"
	JWTUserIDKey = "jwt_user_id"
)

var (
	errMissingAuthHeader = errors.New("missing authorization header")
	errNotBearer         = errors.New("authorization scheme is not Bearer")
)

// Authenticate verifies the bearer token of every request it guards and
// stores the claims and user id on the context. Anything else is answered
// with 401. A nil logger disables auth logging.
func Authenticate(verifier auth.TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		claims, err := verifyRequest(c, verifier)
		if err != nil {
			log.Warn("Bearer authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
			code, message := authFailure(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(code, message, c.GetString(RequestIDKey)))
			return
		}

		userID := claims.OwnerID()
		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, userID)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), userID))

		log.Debug("Bearer authentication successful",
			zap.String("user_id", userID),
			zap.String("role", claims.Role),
		)
		c.Next()
	}
}

func verifyRequest(c *gin.Context, verifier auth.TokenVerifier) (*auth.Claims, error) {
	token, err := bearerToken(c.GetHeader("Authorization"))
	if err != nil {
		return nil, err
	}
	return verifier.Verify(c.Request.Context(), token)
}

// bearerToken extracts the token from an Authorization header. The scheme
// is matched case-insensitively.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthHeader
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

func authFailure(err error) (code, message string) {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenNotYetValid):
		return dto.ErrCodeTokenInvalid, "Token is not yet valid"
	case errors.Is(err, errMissingAuthHeader):
		return dto.ErrCodeUnauthorized, "Authentication required"
	default:
		return dto.ErrCodeTokenInvalid, "Invalid token"
	}
}

// GetJWTClaims returns the claims stored by Authenticate, or nil.
func GetJWTClaims(c *gin.Context) *auth.Claims {
	claims, _ := c.Value(JWTClaimsKey).(*auth.Claims)
	return claims
}

func GetJWTUserID(c *gin.Context) string {
	return c.GetString(JWTUserIDKey)
}
