package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signedcookie/pkg/cookie"
)

func TestManager_SetGet(t *testing.T) {
	t.Parallel()

	m := cookie.New()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"simple", "test", "value"},
		{"empty value", "empty", ""},
		{"token-like", "token", "c2ln.dHM.payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			require.NoError(t, m.Set(w, tt.key, tt.value))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

			got, err := m.Get(r, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestManager_GetMissing(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := m.Get(r, "absent")
	assert.ErrorIs(t, err, cookie.ErrNotFound)
}

func TestManager_SetBlankName(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()

	assert.ErrorIs(t, m.Set(w, "", "value"), cookie.ErrBlankName)
}

func TestManager_SetTooLarge(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()

	err := m.Set(w, "big", strings.Repeat("x", cookie.MaxSize))
	assert.ErrorIs(t, err, cookie.ErrTooLarge)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestManager_DefaultAttributes(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "name", "value", cookie.WithMaxAge(60)))

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "name=value")
	assert.Contains(t, header, "Path=/")
	assert.Contains(t, header, "Max-Age=60")
	assert.Contains(t, header, "SameSite=Lax")
	assert.NotContains(t, header, "Secure")
	assert.NotContains(t, header, "HttpOnly")
}

func TestManager_OverrideAttributes(t *testing.T) {
	t.Parallel()

	m := cookie.New(
		cookie.WithDomain("example.com"),
		cookie.WithSecure(true),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "name", "value", cookie.WithPath("/app")))

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "Domain=example.com")
	assert.Contains(t, header, "Path=/app")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Strict")

	// Per-write overrides must not leak into the manager defaults.
	w2 := httptest.NewRecorder()
	require.NoError(t, m.Set(w2, "name", "value"))
	assert.Contains(t, w2.Header().Get("Set-Cookie"), "Path=/")
	assert.NotContains(t, w2.Header().Get("Set-Cookie"), "Path=/app")
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	w := httptest.NewRecorder()
	m.Delete(w, "name")

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "name=")
	assert.Contains(t, header, "Max-Age=0")
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := cookie.Config{
		Path:     "/api",
		Domain:   "example.com",
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}

	m := cookie.NewFromConfig(cfg)
	w := httptest.NewRecorder()
	require.NoError(t, m.Set(w, "name", "value"))

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "Path=/api")
	assert.Contains(t, header, "Domain=example.com")
	assert.Contains(t, header, "Secure")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=None")
}
