// Package session owns the per-browser page view-models and bearer token.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/apiclient"
	"github.com/artisanfinder/web/internal/auth"
	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
	"github.com/artisanfinder/web/internal/pages"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

// Backend is the union of page sources, satisfied by *apiclient.Client.
type Backend interface {
	pages.ArtisanStore
	pages.ArtisanReader
	pages.ReviewStore
	pages.AccountStore
}

var _ Backend = (*apiclient.Client)(nil)

// Session is one visitor. Each page keeps its own state; nothing is shared between sessions.
type Session struct {
	ID       string
	Home     *pages.HomePage
	Search   *pages.SearchPage
	Profile  *pages.ProfilePage
	Admin    *pages.AdminPage
	Login    *pages.LoginPage
	Register *pages.RegisterPage

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Options configures a Manager.
type Options struct {
	IdleTTL         time.Duration
	DefaultTokenTTL time.Duration
}

// Manager creates, finds and expires sessions.
type Manager struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	backend   Backend
	tokens    TokenStore
	inspector *auth.TokenInspector
	publisher events.Publisher
	logger    *zap.Logger
	opts      Options
	now       func() time.Time
}

// NewManager builds a manager. A nil store keeps tokens in memory.
func NewManager(backend Backend, tokens TokenStore, publisher events.Publisher, logger *zap.Logger, opts Options) *Manager {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = time.Hour
	}
	if opts.DefaultTokenTTL <= 0 {
		opts.DefaultTokenTTL = time.Hour
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		backend:   backend,
		tokens:    tokens,
		inspector: auth.NewTokenInspector(),
		publisher: publisher,
		logger:    logger.Named("session"),
		opts:      opts,
		now:       time.Now,
	}
}

// Resolve returns the session for id, creating one when id is unknown or empty.
// An unknown but well-formed id is kept, so a token stored under it before a restart
// is found again; anything else gets a fresh id. The boolean is true when a new
// session was created.
func (m *Manager) Resolve(id string) (*Session, bool) {
	now := m.now()
	if id != "" {
		m.mu.RLock()
		s, ok := m.sessions[id]
		m.mu.RUnlock()
		if ok {
			s.touch(now)
			return s, false
		}
	}

	newID := uuid.NewString()
	if parsed, err := uuid.Parse(id); err == nil && parsed.String() == id {
		newID = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[newID]; ok {
		s.touch(now)
		return s, false
	}
	s := m.newSession(newID)
	s.touch(now)
	m.sessions[s.ID] = s
	m.logger.Debug("session created", zap.String("session_id", s.ID), zap.Bool("adopted", newID == id))
	return s, true
}

func (m *Manager) newSession(id string) *Session {
	s := &Session{ID: id}
	s.Home = pages.NewHomePage()
	s.Search = pages.NewSearchPage(m.backend)
	s.Profile = pages.NewProfilePage(m.backend, m.backend, m.publisher, m.logger)
	s.Admin = pages.NewAdminPage(m.backend, m.publisher, m.logger)
	s.Login = pages.NewLoginPage(m.backend, func(ctx context.Context, result domain.LoginResult) error {
		return m.SetToken(ctx, id, result.Token)
	}, m.publisher, m.logger)
	s.Register = pages.NewRegisterPage(m.backend, m.publisher, m.logger)
	return s
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Token returns the session's bearer token, or "" when none is held or it expired.
func (m *Manager) Token(ctx context.Context, sessionID string) (string, error) {
	token, ok, err := m.tokens.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	if info, err := m.inspector.Inspect(token); err == nil && info.Expired(m.now()) {
		_ = m.tokens.Delete(ctx, sessionID)
		return "", nil
	}
	return token, nil
}

// SetToken stores token for the session until the token's own expiry.
func (m *Manager) SetToken(ctx context.Context, sessionID, token string) error {
	ttl := m.inspector.TTL(token, m.now(), m.opts.DefaultTokenTTL)
	if ttl <= 0 {
		return apperrors.NewUnauthorized("token already expired")
	}
	return m.tokens.Set(ctx, sessionID, token, ttl)
}

// ClearToken logs the session out.
func (m *Manager) ClearToken(ctx context.Context, sessionID string) error {
	return m.tokens.Delete(ctx, sessionID)
}

// Sweep drops sessions idle for longer than the idle TTL and returns how many went.
func (m *Manager) Sweep(ctx context.Context) int {
	now := m.now()
	var expired []string

	m.mu.Lock()
	for id, s := range m.sessions {
		if s.idleSince(now) > m.opts.IdleTTL {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		if err := m.tokens.Delete(ctx, id); err != nil {
			m.logger.Warn("drop session token", zap.String("session_id", id), zap.Error(err))
		}
	}
	return len(expired)
}
