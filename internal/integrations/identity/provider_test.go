package identity

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestProvider_ParseSession(t *testing.T) {
	provider := NewProvider(testSecret)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	userID, err := provider.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestProvider_ParseSession_EmptyToken(t *testing.T) {
	provider := NewProvider(testSecret)

	_, err := provider.ParseSession("")

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestProvider_ParseSession_WrongSecret(t *testing.T) {
	provider := NewProvider(testSecret)

	token := signToken(t, "other-secret", jwt.RegisteredClaims{Subject: "7"})

	_, err := provider.ParseSession(token)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestProvider_ParseSession_Expired(t *testing.T) {
	provider := NewProvider(testSecret)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})

	_, err := provider.ParseSession(token)

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestProvider_ParseSession_BadSubject(t *testing.T) {
	provider := NewProvider(testSecret)

	tests := []struct {
		name    string
		subject string
	}{
		{name: "non-numeric", subject: "alice"},
		{name: "zero", subject: "0"},
		{name: "negative", subject: "-1"},
		{name: "empty", subject: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, testSecret, jwt.RegisteredClaims{Subject: tt.subject})

			_, err := provider.ParseSession(token)
			assert.ErrorIs(t, err, ErrInvalidClaims)
		})
	}
}
