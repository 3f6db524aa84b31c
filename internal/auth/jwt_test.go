package auth

import (
	"testing"
	"time"

	"civicmatch_backend/internal/config"
	"civicmatch_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestTokenRoundTrip(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("user-1", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t)

	claims := &Claims{
		UserID: "user-1",
		Role:   "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t)

	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t)

	tokenStr, err := GenerateToken("user-1", "user")
	require.NoError(t, err)

	config.AppConfig.JWT.Secret = "a different secret"
	_, err = ParseToken(tokenStr)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestCheckLevel(t *testing.T) {
	active := &models.User{Role: models.UserRoleUser, IsActive: true}
	inactive := &models.User{Role: models.UserRoleUser, IsActive: false}
	verifier := &models.User{Role: models.UserRoleVerifier, IsActive: true}
	admin := &models.User{Role: models.UserRoleAdmin, IsActive: true}

	assert.NoError(t, CheckLevel(active, LevelAuthenticated))
	assert.NoError(t, CheckLevel(active, LevelActive))
	assert.ErrorIs(t, CheckLevel(active, LevelElevated), ErrInsufficientRole)

	assert.NoError(t, CheckLevel(inactive, LevelAuthenticated))
	assert.ErrorIs(t, CheckLevel(inactive, LevelActive), ErrAccountInactive)
	assert.ErrorIs(t, CheckLevel(inactive, LevelElevated), ErrAccountInactive)

	assert.NoError(t, CheckLevel(verifier, LevelElevated))
	assert.NoError(t, CheckLevel(admin, LevelElevated))

	assert.ErrorIs(t, CheckLevel(nil, LevelAuthenticated), ErrNoPrincipal)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}
