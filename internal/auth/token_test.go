package auth_test

import (
	"testing"
	"time"

	"pulse/internal/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", 24)

	token, err := tm.Generate(42, "test@example.com", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParse_InvalidToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", 24)

	_, err := tm.Parse("invalid-token")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_WrongSecret(t *testing.T) {
	signer := auth.NewTokenManager("secret-a", 24)
	verifier := auth.NewTokenManager("secret-b", 24)

	token, err := signer.Generate(1, "test@example.com", "viewer")
	assert.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", 24)

	claims := jwt.MapClaims{
		"user_id": "42",
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expiredToken, _ := token.SignedString([]byte("test-secret-key"))

	_, err := tm.Parse(expiredToken)

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParse_MissingUserID(t *testing.T) {
	tm := auth.NewTokenManager("test-secret-key", 24)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenWithoutUserID, _ := token.SignedString([]byte("test-secret-key"))

	_, err := tm.Parse(tokenWithoutUserID)

	assert.ErrorIs(t, err, auth.ErrInvalidClaims)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("password123", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.True(t, auth.CheckPassword(hash, "password123"))
	assert.False(t, auth.CheckPassword(hash, "wrong-password"))
}
