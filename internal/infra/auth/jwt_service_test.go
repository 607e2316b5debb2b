package auth

import (
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newTestConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService := newTestJWTService(t)
	accountID := uuid.New()

	accessToken, refreshToken, err := jwtService.GenerateTokens(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, accessClaims.AccountID)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := jwtService.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, refreshClaims.AccountID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	jwtService.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := jwtService.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	jwtService.now = time.Now
	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService := newTestJWTService(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := forged.SignedString([]byte("someone-else"))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(signed)
	assert.Error(t, err)
}

func TestJWTService_UnknownTokenType(t *testing.T) {
	jwtService := newTestJWTService(t)

	token, err := jwtService.generateToken(uuid.New(), time.Minute, jwtService.accessSecret, "mystery")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t)

	assert.Equal(t, time.Hour*24*7, jwtService.GetRefreshTokenDuration())
}
