package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lokamarket/auth-service/internal/auth/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15*time.Minute)

	token, err := ts.Issue("user-123", "test@example.com", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15*time.Minute)
	other := service.NewTokenService("other-secret", 15*time.Minute)

	token, err := ts.Issue("user-123", "test@example.com", "user")
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := service.NewTokenService("test-secret", -time.Minute)

	token, err := ts.Issue("user-123", "test@example.com", "user")
	require.NoError(t, err)

	_, err = ts.Verify(token)
	assert.Error(t, err)
}

func TestTokenService_Verify_RejectsUnexpectedSigningMethod(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15*time.Minute)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"user_id": "user-123"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ts.Verify(tokenString)
	assert.Error(t, err)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15*time.Minute)

	_, err := ts.Verify("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenService_GetAccessTokenExpiry(t *testing.T) {
	ts := service.NewTokenService("test-secret", 15*time.Minute)
	assert.Equal(t, 15*time.Minute, ts.GetAccessTokenExpiry())
}
