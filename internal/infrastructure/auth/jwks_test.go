package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKID = "test-key-1"

func jwksJSON(t *testing.T, pub *rsa.PublicKey) []byte {
	t.Helper()
	raw, err := json.Marshal(map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": testKID,
			"alg": "RS256",
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	})
	require.NoError(t, err)
	return raw
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = testKID
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestJWKSVerifier_Verify(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	jwks, err := keyfunc.NewJWKSetJSON(json.RawMessage(jwksJSON(t, &key.PublicKey)))
	require.NoError(t, err)

	verifier := NewJWKSVerifierFromKeyfunc(jwks, []string{"https://auth.owneriq.test"}, "")
	defer verifier.Close()
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		token := signRS256(t, key, &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    "https://auth.owneriq.test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}})
		claims, err := verifier.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "user-42", claims.OwnerID())
	})

	t.Run("unauthorized issuer", func(t *testing.T) {
		token := signRS256(t, key, &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-42",
			Issuer:  "https://other.example.com",
		}})
		_, err := verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrUnauthorizedIssuer)
	})

	t.Run("signed by unknown key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		token := signRS256(t, other, &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-42",
			Issuer:  "https://auth.owneriq.test",
		}})
		_, err = verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("hmac token is rejected", func(t *testing.T) {
		token := signHS256(t, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-42"}}, testSecret)
		_, err := verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token := signRS256(t, key, &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			Issuer:    "https://auth.owneriq.test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}})
		_, err := verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}

func TestNewJWKSVerifier_FetchesKeySet(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	body := jwksJSON(t, &key.PublicKey)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, string(body))
	}))
	defer server.Close()

	verifier, err := NewJWKSVerifier(context.Background(), server.URL, nil, "")
	require.NoError(t, err)
	defer verifier.Close()

	token := signRS256(t, key, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7"}})
	claims, err := verifier.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-7", claims.Subject)
}
