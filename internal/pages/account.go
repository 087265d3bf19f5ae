package pages

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
)

// LoginHandler receives a successful login. The session uses it to keep the token.
type LoginHandler func(ctx context.Context, result domain.LoginResult) error

// LoginSnapshot is the login page view.
type LoginSnapshot struct {
	Status   Status       `json:"status"`
	Error    string       `json:"error,omitempty"`
	Email    string       `json:"email"`
	User     *domain.User `json:"user,omitempty"`
	Missing  []string     `json:"missing,omitempty"`
	Redirect string       `json:"redirect,omitempty"`
}

// LoginPage exchanges credentials for a token.
type LoginPage struct {
	mu        sync.Mutex
	accounts  AccountStore
	onLogin   LoginHandler
	publisher events.Publisher
	logger    *zap.Logger
	state     loadState
	email     string
	password  string
	missing   []string
	user      *domain.User
	redirect  string
}

// NewLoginPage builds a login page. onLogin runs after the backend accepts the credentials.
func NewLoginPage(accounts AccountStore, onLogin LoginHandler, publisher events.Publisher, logger *zap.Logger) *LoginPage {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginPage{
		accounts:  accounts,
		onLogin:   onLogin,
		publisher: publisher,
		logger:    logger,
		state:     newLoadState(),
	}
}

func (p *LoginPage) fields() fieldSet {
	return fieldSet{"email": &p.email, "password": &p.password}
}

// Dispatch handles Mount, SetField and SubmitForm.
func (p *LoginPage) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Mount:
		p.mu.Lock()
		p.redirect = ""
		p.mu.Unlock()
	case SetField:
		p.mu.Lock()
		defer p.mu.Unlock()
		p.missing = nil
		return p.fields().set(c.Field, c.Value)
	case SubmitForm:
		return p.submit(ctx)
	default:
		return errUnsupported("login", cmd)
	}
	return nil
}

func (p *LoginPage) submit(ctx context.Context) error {
	p.mu.Lock()
	if missing := p.fields().missing("email", "password"); len(missing) > 0 {
		p.missing = missing
		p.mu.Unlock()
		return errMissingFields(missing)
	}
	seq := p.state.begin()
	email, password := strings.TrimSpace(p.email), p.password
	p.password = ""
	p.redirect = ""
	p.mu.Unlock()

	result, err := p.accounts.LoginUser(ctx, email, password)
	if err == nil && p.onLogin != nil {
		err = p.onLogin(ctx, *result)
	}

	p.mu.Lock()
	if p.state.stale(seq) {
		p.mu.Unlock()
		return nil
	}
	if err != nil {
		p.state.fail(MsgLogin)
		p.mu.Unlock()
		return nil
	}
	user := result.User
	p.user = &user
	p.redirect = "/"
	p.state.succeed()
	p.mu.Unlock()

	if err := p.publisher.Publish(ctx, events.New(events.EventUserLoggedIn, 0,
		events.UserPayload{UserID: user.ID, Email: user.Email})); err != nil {
		p.logger.Warn("publish login event", zap.Error(err))
	}
	return nil
}

// Snapshot copies the current view. The password is never included.
func (p *LoginPage) Snapshot() LoginSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	snap := LoginSnapshot{
		Status:   p.state.status,
		Error:    p.state.errMsg,
		Email:    p.email,
		Missing:  append([]string(nil), p.missing...),
		Redirect: p.redirect,
	}
	if p.user != nil {
		user := *p.user
		snap.User = &user
	}
	return snap
}

// RegisterSnapshot is the registration page view.
type RegisterSnapshot struct {
	Status   Status   `json:"status"`
	Error    string   `json:"error,omitempty"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Missing  []string `json:"missing,omitempty"`
	Notice   *Notice  `json:"notice,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
}

// RegisterPage creates accounts.
type RegisterPage struct {
	mu        sync.Mutex
	accounts  AccountStore
	publisher events.Publisher
	logger    *zap.Logger
	state     loadState
	name      string
	email     string
	password  string
	missing   []string
	notice    *Notice
	redirect  string
}

// NewRegisterPage constructs page.
func NewRegisterPage(accounts AccountStore, publisher events.Publisher, logger *zap.Logger) *RegisterPage {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegisterPage{
		accounts:  accounts,
		publisher: publisher,
		logger:    logger,
		state:     newLoadState(),
	}
}

func (p *RegisterPage) fields() fieldSet {
	return fieldSet{"name": &p.name, "email": &p.email, "password": &p.password}
}

// Dispatch handles Mount, SetField and SubmitForm.
func (p *RegisterPage) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Mount:
		p.mu.Lock()
		p.redirect = ""
		p.notice = nil
		p.mu.Unlock()
	case SetField:
		p.mu.Lock()
		defer p.mu.Unlock()
		p.missing = nil
		return p.fields().set(c.Field, c.Value)
	case SubmitForm:
		return p.submit(ctx)
	default:
		return errUnsupported("register", cmd)
	}
	return nil
}

func (p *RegisterPage) submit(ctx context.Context) error {
	p.mu.Lock()
	if missing := p.fields().missing("name", "email", "password"); len(missing) > 0 {
		p.missing = missing
		p.mu.Unlock()
		return errMissingFields(missing)
	}
	seq := p.state.begin()
	user := domain.User{
		Name:     strings.TrimSpace(p.name),
		Email:    strings.TrimSpace(p.email),
		Password: p.password,
	}
	p.password = ""
	p.notice = nil
	p.redirect = ""
	p.mu.Unlock()

	created, err := p.accounts.RegisterUser(ctx, user)

	p.mu.Lock()
	if p.state.stale(seq) {
		p.mu.Unlock()
		return nil
	}
	if err != nil {
		p.state.fail(MsgRegister)
		p.mu.Unlock()
		return nil
	}
	if created == nil {
		created = &user
	}
	p.state.succeed()
	p.name, p.email = "", ""
	p.notice = successNotice("Account created. Please log in.")
	p.redirect = "/login"
	p.mu.Unlock()

	if err := p.publisher.Publish(ctx, events.New(events.EventUserRegistered, 0,
		events.UserPayload{UserID: created.ID, Email: created.Email})); err != nil {
		p.logger.Warn("publish register event", zap.Error(err))
	}
	return nil
}

// Snapshot copies the current view. The password is never included.
func (p *RegisterPage) Snapshot() RegisterSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return RegisterSnapshot{
		Status:   p.state.status,
		Error:    p.state.errMsg,
		Name:     p.name,
		Email:    p.email,
		Missing:  append([]string(nil), p.missing...),
		Notice:   p.notice.clone(),
		Redirect: p.redirect,
	}
}
