package upstream

import (
	"clinic-bridge-service/internal/app/config"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticTokenProvider(t *testing.T) {
	provider := NewStaticTokenProvider("homolog-token")
	provider.Invalidate()

	token, err := provider.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "homolog-token", token)
}

func TestLoginTokenProvider(t *testing.T) {
	t.Run("caches until invalidated", func(t *testing.T) {
		var logins int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&logins, 1)
			w.Write([]byte(`{"token":"opaque-token"}`))
		}))
		defer server.Close()

		provider := NewLoginTokenProvider(config.Upstream{
			BaseUrl:           server.URL,
			LoginPath:         "/api/Auth/Login",
			Login:             "integration",
			Password:          "secret",
			TokenTTLInMinutes: 10,
		}, zap.NewNop(), nil)

		for i := 0; i < 3; i++ {
			token, err := provider.Token(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "opaque-token", token)
		}
		assert.Equal(t, int32(1), atomic.LoadInt32(&logins))

		provider.Invalidate()
		_, err := provider.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&logins))
	})

	t.Run("reads expiry from jwt", func(t *testing.T) {
		exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
		require.NoError(t, err)

		provider := &loginTokenProvider{DefaultTTL: time.Minute, Now: time.Now}
		assert.True(t, exp.Add(-tokenExpirySkew).Equal(provider.expiryOf(signed)))
	})

	t.Run("falls back to ttl for opaque tokens", func(t *testing.T) {
		now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
		provider := &loginTokenProvider{DefaultTTL: 55 * time.Minute, Now: func() time.Time { return now }}
		assert.Equal(t, now.Add(55*time.Minute), provider.expiryOf("opaque"))
	})

	t.Run("rejected login is a service unavailable error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		provider := NewLoginTokenProvider(config.Upstream{BaseUrl: server.URL, LoginPath: "/login", Login: "x"}, zap.NewNop(), nil)
		_, err := provider.Token(context.Background())

		require.Error(t, err)
		assert.Equal(t, constvars.ErrCodeServiceUnavailable, exceptions.CodeOf(err))
	})
}

func TestExtractToken(t *testing.T) {
	token, err := extractToken([]byte(`"bare-token"`))
	require.NoError(t, err)
	assert.Equal(t, "bare-token", token)

	token, err = extractToken([]byte(`{"access_token":"abc"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = extractToken([]byte(`{}`))
	assert.Error(t, err)
}

func TestNewTokenProvider(t *testing.T) {
	_, isStatic := NewTokenProvider(config.Upstream{StaticToken: "s", Login: "l"}, zap.NewNop(), nil).(*staticTokenProvider)
	assert.True(t, isStatic)

	_, isLogin := NewTokenProvider(config.Upstream{Login: "l"}, zap.NewNop(), nil).(*loginTokenProvider)
	assert.True(t, isLogin)
}
