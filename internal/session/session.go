// Package session binds the authenticated username to a signed, client-held
// cookie. No session state is kept server-side; the cookie is validated and
// read per request.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	cookieName  = "fh_session"
	keyUsername = "username"

	maxAgeSeconds = 12 * 60 * 60
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

// Manager reads and writes the session cookie.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a Manager whose cookies are signed with secret.
func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// session never fails: a missing or tampered cookie decodes to a fresh session.
func (m *Manager) session(c echo.Context) *sessions.Session {
	s, _ := m.store.Get(c.Request(), cookieName)
	return s
}

// Current returns the authenticated username bound to the request, if any.
func (m *Manager) Current(c echo.Context) (string, bool) {
	username, ok := m.session(c).Values[keyUsername].(string)
	return username, ok && username != ""
}

// Set binds the session to username.
func (m *Manager) Set(c echo.Context, username string) error {
	s := m.session(c)
	s.Values[keyUsername] = username
	return s.Save(c.Request(), c.Response())
}

// Clear removes the username binding. Pending flashes survive so a goodbye
// notice can still be shown after logout.
func (m *Manager) Clear(c echo.Context) error {
	s := m.session(c)
	delete(s.Values, keyUsername)
	return s.Save(c.Request(), c.Response())
}

// Flash queues a one-shot notice.
func (m *Manager) Flash(c echo.Context, category, message string) error {
	s := m.session(c)
	s.AddFlash(Flash{Category: category, Message: message})
	return s.Save(c.Request(), c.Response())
}

// Flashes drains and returns the queued notices.
func (m *Manager) Flashes(c echo.Context) []Flash {
	s := m.session(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(c.Request(), c.Response())

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
