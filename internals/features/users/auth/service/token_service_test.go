// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "coursepay_backend/internals/features/users/user/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := userModel.UserModel{
		ID:       uuid.New(),
		Username: "admin",
		Role:     "admin",
	}

	raw, err := IssueAccessToken("test-secret", user, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := ParseAccessToken("test-secret", raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	raw, err := IssueAccessToken("secret-a", userModel.UserModel{ID: uuid.New()}, time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken("secret-b", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenExpired(t *testing.T) {
	raw, err := IssueAccessToken("test-secret", userModel.UserModel{ID: uuid.New()}, -time.Minute)
	require.NoError(t, err)

	_, err = ParseAccessToken("test-secret", raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("test-secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
