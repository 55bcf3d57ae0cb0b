package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadmate/roadmate/internal/pkg/models"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "roadmate-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	// Arrange
	cfg := testConfig()
	userID := uuid.New()

	// Act
	tokenString, expiresAt, err := GenerateToken(userID, "member", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "member", (*claims)["role"])
	assert.Equal(t, "roadmate-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()
	tokenString, _, err := GenerateToken(uuid.New(), "member", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")

	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "test-secret")

	assert.Error(t, err)
}
