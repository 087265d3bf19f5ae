package pages

import (
	"context"
	"sync"

	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

type call struct {
	op    string
	id    int
	token string
	rec   domain.Artisan
}

// fakeArtisans is an in-memory backend for the artisan surface.
type fakeArtisans struct {
	mu      sync.Mutex
	records []domain.Artisan
	nextID  int
	calls   []call
	listErr error
	getErr  error
	saveErr error
	delErr  error
	onList  func()
}

func newFakeArtisans(records ...domain.Artisan) *fakeArtisans {
	f := &fakeArtisans{nextID: 100}
	f.records = append(f.records, records...)
	return f
}

func (f *fakeArtisans) ListArtisans(ctx context.Context) ([]domain.Artisan, error) {
	if f.onList != nil {
		f.onList()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: "list"})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Artisan{}, f.records...), nil
}

func (f *fakeArtisans) GetArtisan(ctx context.Context, id int) (*domain.Artisan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: "get", id: id})
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, a := range f.records {
		if a.ID == id {
			out := a
			return &out, nil
		}
	}
	return nil, apperrors.NewNotFound("artisan", nil)
}

func (f *fakeArtisans) CreateArtisan(ctx context.Context, a domain.Artisan, token string) (*domain.Artisan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: "create", token: token, rec: a})
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	a.ID = f.nextID
	f.nextID++
	f.records = append(f.records, a)
	return &a, nil
}

func (f *fakeArtisans) UpdateArtisan(ctx context.Context, id int, a domain.Artisan, token string) (*domain.Artisan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: "update", id: id, token: token, rec: a})
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	for i := range f.records {
		if f.records[i].ID == id {
			a.ID = id
			f.records[i] = a
			return &a, nil
		}
	}
	return nil, apperrors.NewNotFound("artisan", nil)
}

func (f *fakeArtisans) DeleteArtisan(ctx context.Context, id int, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{op: "delete", id: id, token: token})
	if f.delErr != nil {
		return f.delErr
	}
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return apperrors.NewNotFound("artisan", nil)
}

func (f *fakeArtisans) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.calls))
	for _, c := range f.calls {
		out = append(out, c.op)
	}
	return out
}

func (f *fakeArtisans) last(op string) (call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].op == op {
			return f.calls[i], true
		}
	}
	return call{}, false
}

type fakeReviews struct {
	mu        sync.Mutex
	reviews   []domain.Review
	listErr   error
	createErr error
	lastToken string
}

func (f *fakeReviews) ListReviews(ctx context.Context, artisanID int) ([]domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []domain.Review{}
	for _, r := range f.reviews {
		if r.ArtisanID == artisanID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviews) CreateReview(ctx context.Context, r domain.Review, token string) (*domain.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastToken = token
	if f.createErr != nil {
		return nil, f.createErr
	}
	r.ID = len(f.reviews) + 1
	f.reviews = append(f.reviews, r)
	return &r, nil
}

type fakeAccounts struct {
	registered []domain.User
	loginErr   error
	regErr     error
}

func (f *fakeAccounts) RegisterUser(ctx context.Context, u domain.User) (*domain.User, error) {
	if f.regErr != nil {
		return nil, f.regErr
	}
	f.registered = append(f.registered, u)
	u.ID = len(f.registered)
	u.Password = ""
	return &u, nil
}

func (f *fakeAccounts) LoginUser(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if password != "secret" {
		return nil, apperrors.NewUnauthorized("bad credentials")
	}
	return &domain.LoginResult{Token: "tok-" + email, User: domain.User{ID: 1, Name: "Ann", Email: email}}, nil
}

// recorder captures published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) types() []events.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func seed() []domain.Artisan {
	rating := 4.5
	jobs := 30
	return []domain.Artisan{
		{ID: 1, Name: "Jane Wanjiru", Skill: "Plumber", Location: "Nairobi", Phone: "0711", Experience: "5 years"},
		{ID: 2, Name: "Omar Ali", Skill: "Mason", Location: "Mombasa", Phone: "0722", Experience: "8 years"},
		{ID: 7, Name: "Peter Otieno", Skill: "Carpenter", Location: "Kisumu", Phone: "0733", Experience: "3 years",
			Rating: &rating, CompletedJobs: &jobs, Avatar: "https://img.example.com/p.png"},
	}
}
