package jwt

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	svc, err := NewJWTService("test-secret", "1h")
	require.NoError(t, err)
	return svc.(*JWTService)
}

func TestNewJWTService_InvalidDuration(t *testing.T) {
	_, err := NewJWTService("test-secret", "forever")
	assert.Error(t, err)
}

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := newTestService(t)
	employeeID := "3"

	token, expiresAt, err := svc.GenerateAccessToken("3", auth.RoleEmployee, &employeeID)
	require.NoError(t, err)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	ctx := jwtauth.NewContext(context.Background(), decoded, nil)
	claims, err := ClaimsFromContext(ctx)
	require.NoError(t, err)
	assert.Equal(t, Claims{UserID: "3", Role: auth.RoleEmployee, EmployeeID: "3"}, claims)
	assert.False(t, claims.IsAdmin())
}

func TestClaimsFromContext_RejectsSSEToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateSSEToken("admin")
	require.NoError(t, err)

	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)

	_, err = ClaimsFromContext(jwtauth.NewContext(context.Background(), decoded, nil))
	assert.ErrorIs(t, err, ErrMissingClaims)
}

func TestSSEToken(t *testing.T) {
	svc := newTestService(t)

	token, expiresIn, err := svc.GenerateSSEToken("1")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	userID, err := svc.ValidateSSEToken(token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)

	access, _, err := svc.GenerateAccessToken("admin", auth.RoleAdmin, nil)
	require.NoError(t, err)
	_, err = svc.ValidateSSEToken(access)
	assert.Error(t, err, "access tokens cannot open a stream")

	_, err = svc.ValidateSSEToken("garbage")
	assert.Error(t, err)
}

func TestSSEToken_Expired(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.GenerateSSEToken("1")
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(token)
	assert.Error(t, err)
}
