// Package session persists the signed-in owner in a signed (and
// optionally encrypted) cookie. The store keeps no session state.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"hotel_concierge/internal/domain"
)

const (
	defaultCookieName = "concierge_session"
	defaultLifetime   = 12 * time.Hour
)

var ErrExpired = errors.New("session expired")

// User is the session payload: just enough to attribute mutations.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type payload struct {
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Manager struct {
	codec    *securecookie.SecureCookie
	name     string
	lifetime time.Duration
	secure   bool
	now      func() time.Time
}

// NewManager builds a cookie session manager. hashKey is required;
// blockKey is optional and enables payload encryption.
func NewManager(hashKey, blockKey []byte, secure bool) (*Manager, error) {
	if len(hashKey) == 0 {
		return nil, errors.New("session: hash key is required")
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	return &Manager{
		codec:    codec,
		name:     defaultCookieName,
		lifetime: defaultLifetime,
		secure:   secure,
		now:      time.Now,
	}, nil
}

// Issue writes a fresh session cookie for u.
func (m *Manager) Issue(w http.ResponseWriter, u User) error {
	p := payload{User: u, ExpiresAt: m.now().Add(m.lifetime)}
	encoded, err := m.codec.Encode(m.name, p)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   int(m.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Resolve returns the signed-in user or domain.ErrUnauthenticated.
func (m *Manager) Resolve(r *http.Request) (User, error) {
	c, err := r.Cookie(m.name)
	if err != nil {
		return User{}, domain.ErrUnauthenticated
	}
	var p payload
	if err := m.codec.Decode(m.name, c.Value, &p); err != nil {
		return User{}, domain.ErrUnauthenticated
	}
	if m.now().After(p.ExpiresAt) {
		return User{}, ErrExpired
	}
	return p.User, nil
}
