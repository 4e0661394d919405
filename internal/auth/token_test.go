package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"allergysafe-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie preferred", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("Header fallback", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", ExtractAccessToken(r))
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", ExtractAccessToken(r))
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Round trip", func(t *testing.T) {
		id := session.Identity{Role: session.RoleSeller, Name: "Vendeur Pro"}

		token, err := GenerateToken(id)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "seller", claims.Role)
		assert.Equal(t, "Vendeur Pro", claims.Name)
	})

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ParseToken("not-a-token")
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateToken(session.Identity{Role: session.RoleClient, Name: "Sarra Client"})
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "other-secret")
		_, err = ParseToken(token)
		assert.Error(t, err)
	})
}

func TestSecretRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(session.Identity{Role: session.RoleClient})
	assert.ErrorIs(t, err, ErrSecretNotSet)

	_, err = ParseToken("whatever")
	assert.ErrorIs(t, err, ErrSecretNotSet)
}
