package utils

import (
	"testing"

	"walletbook/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	in := &models.UserClaims{UserID: "user-1", Email: "a@b.com", Role: models.RoleUser}
	access, refresh, err := GenerateTokens(in)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := ParseToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.False(t, claims.IsAdmin())
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	access, _, err := GenerateTokens(&models.UserClaims{UserID: "user-1"})
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(access)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestGenerateTokensRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, _, err := GenerateTokens(&models.UserClaims{UserID: "user-1"})
	assert.Error(t, err)
}
