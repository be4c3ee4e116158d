// Package session keeps the logged-in user and the anonymous visitor id in a
// signed (and optionally encrypted) cookie.
package session

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/vadimbarashkov/tinyapp/internal/config"
)

type ctxKey struct{}

type Session struct {
	UserID    string `json:"user_id,omitempty"`
	VisitorID string `json:"visitor_id,omitempty"`
}

// Manager encodes sessions into cookies and back.
type Manager struct {
	name   string
	maxAge int
	secure bool
	codec  *securecookie.SecureCookie
}

// NewManager builds a Manager from cfg. An empty hash key is replaced with a
// random one; an empty block key disables encryption.
func NewManager(cfg config.Session) (*Manager, error) {
	const op = "session.NewManager"

	hashKey := []byte(cfg.HashKey)
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, fmt.Errorf("%s: failed to generate hash key", op)
		}
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey = []byte(cfg.BlockKey)
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(cfg.MaxAge)

	return &Manager{
		name:   cfg.CookieName,
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
		codec:  codec,
	}, nil
}

// Load decodes the session cookie of r. Missing, tampered or expired cookies
// yield an empty session.
func (m *Manager) Load(r *http.Request) Session {
	var s Session

	c, err := r.Cookie(m.name)
	if err != nil {
		return s
	}

	if err := m.codec.Decode(m.name, c.Value, &s); err != nil {
		return Session{}
	}

	return s
}

func (m *Manager) Save(w http.ResponseWriter, s Session) error {
	const op = "session.Manager.Save"

	value, err := m.codec.Encode(m.name, s)
	if err != nil {
		return fmt.Errorf("%s: failed to encode session: %w", op, err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    value,
		Path:     "/",
		MaxAge:   m.maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Middleware loads the request's session into its context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := NewContext(r.Context(), m.Load(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
