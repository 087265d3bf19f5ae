package session

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/observability"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

const sessionKey = "web_session"

// Middleware attaches the visitor's session to every request and keeps its cookie alive.
type Middleware struct {
	manager    *Manager
	cookieName string
	secure     bool
}

// NewMiddleware constructs middleware.
func NewMiddleware(manager *Manager, cookieName string, secure bool) *Middleware {
	if cookieName == "" {
		cookieName = "af_session"
	}
	return &Middleware{manager: manager, cookieName: cookieName, secure: secure}
}

// Handle resolves the session from the cookie. The cookie is issued again on every
// request so its expiry slides with the session's idle timeout.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	s, _ := m.manager.Resolve(c.Cookies(m.cookieName))
	c.Cookie(&fiber.Cookie{
		Name:     m.cookieName,
		Value:    s.ID,
		Path:     "/",
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  m.manager.now().Add(m.manager.opts.IdleTTL),
	})
	c.Locals(sessionKey, s)
	c.Locals(observability.SessionIDLocal, s.ID)
	return c.Next()
}

// FromContext retrieves the session attached by Handle.
func FromContext(c *fiber.Ctx) (*Session, error) {
	s, ok := c.Locals(sessionKey).(*Session)
	if !ok || s == nil {
		return nil, apperrors.NewInternalError(nil)
	}
	return s, nil
}
