package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestIsExpiredPastExp(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	assert.True(t, IsExpired(token))
}

func TestIsExpiredFutureExp(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	assert.False(t, IsExpired(token))
}

func TestIsExpiredNoExpClaim(t *testing.T) {
	// 没有exp的token交给服务端判定
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})
	assert.False(t, IsExpired(token))
}

func TestIsExpiredOpaqueToken(t *testing.T) {
	assert.False(t, IsExpired("not-a-jwt-at-all"))
	assert.False(t, IsExpired(""))
}
