package pages

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/artisanfinder/web/internal/components"
	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
)

// ProfileView is the detailed artisan view.
type ProfileView struct {
	components.ArtisanCard
	About      string   `json:"about"`
	Expertise  []string `json:"expertise"`
	Experience string   `json:"experienceSummary"`
}

// ProfileSnapshot is the profile page view.
type ProfileSnapshot struct {
	Status        Status          `json:"status"`
	Error         string          `json:"error,omitempty"`
	ArtisanID     int             `json:"artisanId"`
	Artisan       *ProfileView    `json:"artisan,omitempty"`
	Reviews       []domain.Review `json:"reviews"`
	AverageRating *float64        `json:"averageRating,omitempty"`
	ReviewsError  string          `json:"reviewsError,omitempty"`
	Notice        *Notice         `json:"notice,omitempty"`
	BackURL       string          `json:"backUrl"`
}

// ProfilePage shows one artisan and its reviews.
type ProfilePage struct {
	mu         sync.Mutex
	artisans   ArtisanReader
	reviews    ReviewStore
	publisher  events.Publisher
	logger     *zap.Logger
	state      loadState
	id         int
	artisan    *domain.Artisan
	reviewList []domain.Review
	reviewsErr string
	notice     *Notice
}

// NewProfilePage builds a profile page. A nil publisher or logger is replaced by a no-op.
func NewProfilePage(artisans ArtisanReader, reviews ReviewStore, publisher events.Publisher, logger *zap.Logger) *ProfilePage {
	if publisher == nil {
		publisher = events.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfilePage{
		artisans:  artisans,
		reviews:   reviews,
		publisher: publisher,
		logger:    logger,
		state:     newLoadState(),
	}
}

// Dispatch handles Mount, Retry and SubmitReview.
func (p *ProfilePage) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Mount:
		p.load(ctx, c.ID)
	case Retry:
		p.mu.Lock()
		id := p.id
		p.mu.Unlock()
		p.load(ctx, id)
	case SubmitReview:
		return p.submitReview(ctx, c)
	default:
		return errUnsupported("profile", cmd)
	}
	return nil
}

func (p *ProfilePage) load(ctx context.Context, id int) {
	p.mu.Lock()
	seq := p.state.begin()
	p.id = id
	p.artisan = nil
	p.reviewList = nil
	p.reviewsErr = ""
	p.notice = nil
	if id <= 0 {
		p.state.fail(MsgLoadProfile)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	artisan, err := p.artisans.GetArtisan(ctx, id)
	var reviews []domain.Review
	var reviewsErr error
	if err == nil && p.reviews != nil {
		reviews, reviewsErr = p.reviews.ListReviews(ctx, id)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.stale(seq) {
		return
	}
	if err != nil {
		p.state.fail(MsgLoadProfile)
		return
	}
	p.artisan = artisan
	p.applyReviews(reviews, reviewsErr)
	p.state.succeed()
}

func (p *ProfilePage) applyReviews(reviews []domain.Review, err error) {
	if err != nil {
		p.reviewList = nil
		p.reviewsErr = MsgLoadReviews
		return
	}
	p.reviewList = reviews
	p.reviewsErr = ""
}

func (p *ProfilePage) submitReview(ctx context.Context, c SubmitReview) error {
	p.mu.Lock()
	if p.state.status != StatusLoaded || p.artisan == nil {
		p.mu.Unlock()
		return errUnsupported("profile without artisan", c)
	}
	comment := strings.TrimSpace(c.Comment)
	var missing []string
	if comment == "" {
		missing = append(missing, "comment")
	}
	if c.Rating == 0 {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		p.mu.Unlock()
		return errMissingFields(missing)
	}
	id := p.id
	p.notice = nil
	p.mu.Unlock()

	created, err := p.reviews.CreateReview(ctx, domain.Review{ArtisanID: id, Rating: c.Rating, Comment: comment}, c.Token)
	if err != nil {
		p.mu.Lock()
		p.notice = errorNotice(MsgSubmitReview)
		p.mu.Unlock()
		return nil
	}

	if created == nil {
		created = &domain.Review{ArtisanID: id, Rating: c.Rating, Comment: comment}
	}
	if err := p.publisher.Publish(ctx, events.New(events.EventReviewAdded, id,
		events.ReviewAddedPayload{ReviewID: created.ID, Rating: created.Rating})); err != nil {
		p.logger.Warn("publish review event", zap.Error(err))
	}

	reviews, listErr := p.reviews.ListReviews(ctx, id)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.id != id {
		return nil
	}
	p.applyReviews(reviews, listErr)
	p.notice = successNotice("Review added successfully")
	return nil
}

// Snapshot copies the current view.
func (p *ProfilePage) Snapshot() ProfileSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := ProfileSnapshot{
		Status:       p.state.status,
		Error:        p.state.errMsg,
		ArtisanID:    p.id,
		Reviews:      append([]domain.Review{}, p.reviewList...),
		ReviewsError: p.reviewsErr,
		Notice:       p.notice.clone(),
		BackURL:      "/search",
	}
	if p.artisan != nil {
		view := newProfileView(*p.artisan)
		snap.Artisan = &view
	}
	snap.AverageRating = averageRating(p.reviewList)
	return snap
}

func newProfileView(a domain.Artisan) ProfileView {
	skill := strings.ToLower(a.Skill)
	about := a.Description
	if strings.TrimSpace(about) == "" {
		about = fmt.Sprintf("%s is a skilled %s with %s of experience in the field. "+
			"Based in %s, they are committed to providing quality workmanship and excellent customer service.",
			a.Name, skill, a.Experience, a.Location)
	}
	return ProfileView{
		ArtisanCard: components.NewArtisanCard(a),
		About:       about,
		Expertise:   []string{a.Skill, "Quality Workmanship", "Reliable Service", "Customer Focused"},
		Experience: fmt.Sprintf("%s of professional experience in %s work, serving customers in %s and surrounding areas.",
			a.Experience, skill, a.Location),
	}
}

func averageRating(reviews []domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := sum / float64(len(reviews))
	return &avg
}
