package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/api/http/handlers"
	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
	"github.com/artisanfinder/web/internal/observability"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/session"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

type stubBackend struct {
	mu       sync.Mutex
	artisans []domain.Artisan
	reviews  []domain.Review
	token    string
	tokens   []string
	failList bool
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return &stubBackend{
		token: token,
		artisans: []domain.Artisan{
			{ID: 1, Name: "John Kamau", Skill: "Carpenter", Location: "Nairobi", Phone: "0700", Experience: "5 years"},
			{ID: 2, Name: "Mary Wanjiku", Skill: "Plumber", Location: "Mombasa", Phone: "0711", Experience: "3 years"},
		},
		reviews: []domain.Review{{ID: 1, ArtisanID: 1, Rating: 4, Comment: "Good"}},
	}
}

func (b *stubBackend) ListArtisans(context.Context) ([]domain.Artisan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failList {
		return nil, apperrors.NewBackendUnavailable(io.ErrUnexpectedEOF)
	}
	return append([]domain.Artisan(nil), b.artisans...), nil
}

func (b *stubBackend) GetArtisan(_ context.Context, id int) (*domain.Artisan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, a := range b.artisans {
		if a.ID == id {
			found := a
			return &found, nil
		}
	}
	return nil, apperrors.NewNotFound("artisan", nil)
}

func (b *stubBackend) CreateArtisan(_ context.Context, a domain.Artisan, token string) (*domain.Artisan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = append(b.tokens, token)
	a.ID = len(b.artisans) + 1
	b.artisans = append(b.artisans, a)
	return &a, nil
}

func (b *stubBackend) UpdateArtisan(_ context.Context, id int, a domain.Artisan, token string) (*domain.Artisan, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = append(b.tokens, token)
	for i := range b.artisans {
		if b.artisans[i].ID == id {
			a.ID = id
			b.artisans[i] = a
			return &a, nil
		}
	}
	return nil, apperrors.NewNotFound("artisan", nil)
}

func (b *stubBackend) DeleteArtisan(_ context.Context, id int, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = append(b.tokens, token)
	for i := range b.artisans {
		if b.artisans[i].ID == id {
			b.artisans = append(b.artisans[:i], b.artisans[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("artisan", nil)
}

func (b *stubBackend) ListReviews(_ context.Context, artisanID int) ([]domain.Review, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []domain.Review
	for _, r := range b.reviews {
		if r.ArtisanID == artisanID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (b *stubBackend) CreateReview(_ context.Context, r domain.Review, token string) (*domain.Review, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = append(b.tokens, token)
	r.ID = len(b.reviews) + 1
	b.reviews = append(b.reviews, r)
	return &r, nil
}

func (b *stubBackend) RegisterUser(_ context.Context, u domain.User) (*domain.User, error) {
	u.ID = 9
	u.Password = ""
	return &u, nil
}

func (b *stubBackend) LoginUser(_ context.Context, email, password string) (*domain.LoginResult, error) {
	if password != "secret" {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return &domain.LoginResult{Token: b.token, User: domain.User{ID: 1, Email: email}}, nil
}

func (b *stubBackend) lastToken() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.tokens) == 0 {
		return ""
	}
	return b.tokens[len(b.tokens)-1]
}

func newTestApp(t *testing.T, backend session.Backend) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	metrics := observability.NewMetrics()
	manager := session.NewManager(backend, nil, events.NewInMemoryDispatcher(), logger, session.Options{})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterMiddlewares(app, logger, metrics, 0, session.NewMiddleware(manager, "af_session", false))
	RegisterRoutes(app, RouteConfig{
		Health:  handlers.NewHealthHandler("artisan-finder-web", "test", nil),
		Metrics: handlers.NewMetricsHandler(metrics),
		Home:    handlers.NewHomeHandler(manager),
		Search:  handlers.NewSearchHandler(manager),
		Profile: handlers.NewProfileHandler(manager),
		Admin:   handlers.NewAdminHandler(manager),
		Account: handlers.NewAccountHandler(manager),
	})
	return app
}

// browser replays the session cookie like a real client.
type browser struct {
	t      *testing.T
	app    *fiber.App
	cookie string
}

func (b *browser) do(method, target, body string) (int, map[string]any) {
	b.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if b.cookie != "" {
		req.Header.Set(fiber.HeaderCookie, b.cookie)
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	defer resp.Body.Close()

	for _, c := range resp.Cookies() {
		if c.Name == "af_session" {
			b.cookie = c.Name + "=" + c.Value
		}
	}
	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	require.NoError(b.t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func pageOf(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "missing data: %v", body)
	page, ok := data["page"].(map[string]any)
	require.True(t, ok, "missing page: %v", data)
	return page
}

func signedIn(t *testing.T, body map[string]any) bool {
	t.Helper()
	navbar := body["data"].(map[string]any)["navbar"].(map[string]any)
	return navbar["signedIn"].(bool)
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

func TestHealthRoutes(t *testing.T) {
	b := &browser{t: t, app: newTestApp(t, newStubBackend(t))}

	status, body := b.do(fiber.MethodGet, "/health/live", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alive", body["status"])

	status, body = b.do(fiber.MethodGet, "/health/ready", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "disabled", body["dependencies"].(map[string]any)["redis"])
}

func TestHomeSearchRedirect(t *testing.T) {
	b := &browser{t: t, app: newTestApp(t, newStubBackend(t))}

	status, body := b.do(fiber.MethodGet, "/", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, b.cookie)
	assert.False(t, signedIn(t, body))
	assert.Len(t, pageOf(t, body)["features"], 3)

	_, body = b.do(fiber.MethodPost, "/", `{"skill":"Plumber","location":"All Locations"}`)
	assert.Equal(t, "/search?skill=Plumber", pageOf(t, body)["redirect"])
}

func TestSearchRoutes(t *testing.T) {
	backend := newStubBackend(t)
	b := &browser{t: t, app: newTestApp(t, backend)}

	status, body := b.do(fiber.MethodGet, "/search?skill=carp", "")
	require.Equal(t, fiber.StatusOK, status)
	page := pageOf(t, body)
	assert.Equal(t, "loaded", page["status"])
	assert.Equal(t, float64(1), page["count"])
	assert.Equal(t, "1 artisan found for carp", page["summary"])

	_, body = b.do(fiber.MethodPost, "/search", `{"skill":"All Skills","location":"mombasa"}`)
	page = pageOf(t, body)
	assert.Equal(t, float64(1), page["count"])
	assert.Equal(t, "/search?location=mombasa", page["url"])

	backend.mu.Lock()
	backend.failList = true
	backend.mu.Unlock()
	_, body = b.do(fiber.MethodPost, "/search/retry", "")
	page = pageOf(t, body)
	assert.Equal(t, "error", page["status"])
	assert.Equal(t, pages.MsgLoadArtisans, page["error"])
}

func TestProfileRoutes(t *testing.T) {
	backend := newStubBackend(t)
	b := &browser{t: t, app: newTestApp(t, backend)}

	status, body := b.do(fiber.MethodGet, "/artisan/1", "")
	require.Equal(t, fiber.StatusOK, status)
	page := pageOf(t, body)
	assert.Equal(t, "loaded", page["status"])
	assert.Len(t, page["reviews"], 1)

	_, body = b.do(fiber.MethodGet, "/artisan/abc", "")
	assert.Equal(t, "error", pageOf(t, body)["status"])

	status, body = b.do(fiber.MethodPost, "/artisan/1/reviews", `{"rating":5}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))

	status, body = b.do(fiber.MethodPost, "/artisan/1/reviews", `{"rating":5,"comment":"Great work"}`)
	require.Equal(t, fiber.StatusOK, status)
	page = pageOf(t, body)
	assert.Equal(t, float64(1), page["artisanId"])
	assert.Len(t, page["reviews"], 2)
}

func TestLoginThenAdminCreate(t *testing.T) {
	backend := newStubBackend(t)
	b := &browser{t: t, app: newTestApp(t, backend)}

	status, body := b.do(fiber.MethodPost, "/admin/draft/submit", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))

	status, body = b.do(fiber.MethodPatch, "/login", `{"field":"colour","value":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	b.do(fiber.MethodPatch, "/login", `{"field":"email","value":"ada@example.com"}`)
	b.do(fiber.MethodPatch, "/login", `{"field":"password","value":"secret"}`)
	_, body = b.do(fiber.MethodPost, "/login", "")
	assert.Equal(t, "/", pageOf(t, body)["redirect"])
	assert.True(t, signedIn(t, body))

	_, body = b.do(fiber.MethodGet, "/admin", "")
	assert.Equal(t, float64(2), pageOf(t, body)["total"])

	for field, value := range map[string]string{
		"name": "Peter Otieno", "skill": "Mason", "location": "Kisumu", "phone": "0722", "experience": "7 years",
	} {
		status, _ := b.do(fiber.MethodPatch, "/admin/draft", `{"field":"`+field+`","value":"`+value+`"}`)
		require.Equal(t, fiber.StatusOK, status)
	}
	_, body = b.do(fiber.MethodPost, "/admin/draft/submit", "")
	page := pageOf(t, body)
	assert.Equal(t, float64(3), page["total"])
	assert.Equal(t, "Artisan added successfully", page["notice"].(map[string]any)["text"])
	assert.Equal(t, backend.token, backend.lastToken())

	_, body = b.do(fiber.MethodDelete, "/admin/artisans/3", "")
	assert.Equal(t, float64(2), pageOf(t, body)["total"])

	_, body = b.do(fiber.MethodPost, "/logout", "")
	assert.False(t, signedIn(t, body))
}

func TestAdminEditRoutes(t *testing.T) {
	b := &browser{t: t, app: newTestApp(t, newStubBackend(t))}
	b.do(fiber.MethodGet, "/admin", "")

	status, body := b.do(fiber.MethodPost, "/admin/draft/42", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))

	status, _ = b.do(fiber.MethodPost, "/admin/draft/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	_, body = b.do(fiber.MethodPost, "/admin/draft/2", "")
	draft := pageOf(t, body)["draft"].(map[string]any)
	assert.Equal(t, "Edit Artisan", draft["title"])
	assert.Equal(t, "Mary Wanjiku", draft["fields"].(map[string]any)["name"])

	_, body = b.do(fiber.MethodDelete, "/admin/draft", "")
	draft = pageOf(t, body)["draft"].(map[string]any)
	assert.Equal(t, false, draft["open"])
	assert.Equal(t, "Add New Artisan", draft["title"])
}

func TestSessionsAreIsolated(t *testing.T) {
	app := newTestApp(t, newStubBackend(t))
	first := &browser{t: t, app: app}
	second := &browser{t: t, app: app}

	first.do(fiber.MethodGet, "/search?skill=plumb", "")
	_, body := second.do(fiber.MethodGet, "/search", "")
	assert.NotEqual(t, first.cookie, second.cookie)
	assert.Equal(t, float64(2), pageOf(t, body)["count"])

	_, body = first.do(fiber.MethodPost, "/search/retry", "")
	assert.Equal(t, float64(1), pageOf(t, body)["count"])
}

func TestUnknownRoute(t *testing.T) {
	b := &browser{t: t, app: newTestApp(t, newStubBackend(t))}
	status, body := b.do(fiber.MethodGet, "/nope", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}
