package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadimbarashkov/tinyapp/internal/config"
)

func newManager(t *testing.T, cfg config.Session) *Manager {
	t.Helper()

	if cfg.CookieName == "" {
		cfg.CookieName = "session"
	}

	m, err := NewManager(cfg)
	require.NoError(t, err)

	return m
}

func saveCookie(t *testing.T, m *Manager, s Session) *http.Cookie {
	t.Helper()

	rec := httptest.NewRecorder()
	require.NoError(t, m.Save(rec, s))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	return cookies[0]
}

func TestManager_SaveLoad(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Session
	}{
		{
			name: "signed only",
			cfg:  config.Session{HashKey: "very-secret-hash-key", MaxAge: 3600},
		},
		{
			name: "signed and encrypted",
			cfg:  config.Session{HashKey: "very-secret-hash-key", BlockKey: "0123456789abcdef", MaxAge: 3600},
		},
		{
			name: "random hash key",
			cfg:  config.Session{MaxAge: 3600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newManager(t, tt.cfg)
			want := Session{UserID: "testuser12", VisitorID: "vis001"}

			c := saveCookie(t, m, want)

			assert.Equal(t, "session", c.Name)
			assert.Equal(t, "/", c.Path)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, 3600, c.MaxAge)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)

			assert.Equal(t, want, m.Load(req))
		})
	}
}

func TestManager_Load(t *testing.T) {
	m := newManager(t, config.Session{HashKey: "very-secret-hash-key"})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		assert.Equal(t, Session{}, m.Load(req))
	})

	t.Run("tampered cookie", func(t *testing.T) {
		c := saveCookie(t, m, Session{UserID: "testuser12"})
		c.Value = c.Value[:len(c.Value)-2] + "xx"

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)

		assert.Equal(t, Session{}, m.Load(req))
	})

	t.Run("foreign key", func(t *testing.T) {
		other := newManager(t, config.Session{HashKey: "another-secret-key"})
		c := saveCookie(t, other, Session{UserID: "testuser12"})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)

		assert.Equal(t, Session{}, m.Load(req))
	})
}

func TestManager_Middleware(t *testing.T) {
	m := newManager(t, config.Session{HashKey: "very-secret-hash-key"})
	want := Session{UserID: "testuser12", VisitorID: "vis001"}

	var got Session
	h := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(saveCookie(t, m, want))
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, want, got)
}

func TestFromContext(t *testing.T) {
	assert.Equal(t, Session{}, FromContext(context.Background()))

	ctx := NewContext(context.Background(), Session{VisitorID: "vis001"})
	assert.Equal(t, "vis001", FromContext(ctx).VisitorID)
}
