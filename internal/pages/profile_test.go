package pages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artisanfinder/web/internal/domain"
	"github.com/artisanfinder/web/internal/events"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

func TestProfilePageLoads(t *testing.T) {
	reviews := &fakeReviews{reviews: []domain.Review{
		{ID: 1, ArtisanID: 7, Rating: 4, Comment: "Good"},
		{ID: 2, ArtisanID: 7, Rating: 5, Comment: "Great"},
		{ID: 3, ArtisanID: 1, Rating: 1, Comment: "Other"},
	}}
	page := NewProfilePage(newFakeArtisans(seed()...), reviews, nil, nil)

	require.NoError(t, page.Dispatch(context.Background(), Mount{ID: 7}))
	snap := page.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	require.NotNil(t, snap.Artisan)
	assert.Equal(t, "PO", snap.Artisan.Initials)
	require.NotNil(t, snap.Artisan.Rating)
	assert.Equal(t, 4.5, *snap.Artisan.Rating)
	assert.Contains(t, snap.Artisan.About, "Peter Otieno is a skilled carpenter with 3 years of experience")
	assert.Equal(t, "Carpenter", snap.Artisan.Expertise[0])
	assert.Len(t, snap.Reviews, 2)
	require.NotNil(t, snap.AverageRating)
	assert.Equal(t, 4.5, *snap.AverageRating)
}

func TestProfilePageMissingArtisanEndsInError(t *testing.T) {
	page := NewProfilePage(newFakeArtisans(seed()...), &fakeReviews{}, nil, nil)

	require.NoError(t, page.Dispatch(context.Background(), Mount{ID: 404}))
	snap := page.Snapshot()
	assert.Equal(t, StatusError, snap.Status)
	assert.NotEmpty(t, snap.Error)
	assert.Nil(t, snap.Artisan)
}

func TestProfilePageInvalidIDEndsInError(t *testing.T) {
	backend := newFakeArtisans(seed()...)
	page := NewProfilePage(backend, &fakeReviews{}, nil, nil)

	require.NoError(t, page.Dispatch(context.Background(), Mount{ID: 0}))
	assert.Equal(t, StatusError, page.Snapshot().Status)
	assert.Empty(t, backend.ops())
}

func TestProfilePageReviewFailureIsNotFatal(t *testing.T) {
	page := NewProfilePage(newFakeArtisans(seed()...), &fakeReviews{listErr: errors.New("down")}, nil, nil)

	require.NoError(t, page.Dispatch(context.Background(), Mount{ID: 1}))
	snap := page.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	assert.Equal(t, MsgLoadReviews, snap.ReviewsError)
	assert.Empty(t, snap.Reviews)
}

func TestProfilePageDescriptionWins(t *testing.T) {
	records := seed()
	records[0].Description = "Fixes leaks fast."
	page := NewProfilePage(newFakeArtisans(records...), nil, nil, nil)

	require.NoError(t, page.Dispatch(context.Background(), Mount{ID: 1}))
	assert.Equal(t, "Fixes leaks fast.", page.Snapshot().Artisan.About)
}

func TestProfilePageSubmitReview(t *testing.T) {
	reviews := &fakeReviews{}
	rec := &recorder{}
	page := NewProfilePage(newFakeArtisans(seed()...), reviews, rec, nil)
	ctx := context.Background()

	require.NoError(t, page.Dispatch(ctx, Mount{ID: 2}))

	err := page.Dispatch(ctx, SubmitReview{Rating: 5, Comment: "  ", Token: "tok"})
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeValidation))

	require.NoError(t, page.Dispatch(ctx, SubmitReview{Rating: 5, Comment: "Solid wall", Token: "tok"}))
	snap := page.Snapshot()
	require.Len(t, snap.Reviews, 1)
	assert.Equal(t, 2, snap.Reviews[0].ArtisanID)
	require.NotNil(t, snap.Notice)
	assert.Equal(t, NoticeSuccess, snap.Notice.Kind)
	assert.Equal(t, "tok", reviews.lastToken)
	assert.Equal(t, []events.EventType{events.EventReviewAdded}, rec.types())

	reviews.createErr = errors.New("unauthorized")
	require.NoError(t, page.Dispatch(ctx, SubmitReview{Rating: 3, Comment: "Again"}))
	snap = page.Snapshot()
	assert.Equal(t, NoticeError, snap.Notice.Kind)
	assert.Len(t, snap.Reviews, 1)
}

func TestProfilePageReviewNeedsLoadedArtisan(t *testing.T) {
	page := NewProfilePage(newFakeArtisans(), &fakeReviews{}, nil, nil)
	require.Error(t, page.Dispatch(context.Background(), SubmitReview{Rating: 4, Comment: "x"}))
}

// silentReviews acknowledges a review without returning the stored record.
type silentReviews struct {
	fakeReviews
}

func (s *silentReviews) CreateReview(ctx context.Context, r domain.Review, token string) (*domain.Review, error) {
	if _, err := s.fakeReviews.CreateReview(ctx, r, token); err != nil {
		return nil, err
	}
	return nil, nil
}

func TestProfilePageReviewWithoutCreatedRecord(t *testing.T) {
	rec := &recorder{}
	page := NewProfilePage(newFakeArtisans(seed()...), &silentReviews{}, rec, nil)
	ctx := context.Background()

	require.NoError(t, page.Dispatch(ctx, Mount{ID: 1}))
	require.NoError(t, page.Dispatch(ctx, SubmitReview{Rating: 4, Comment: "Tidy work", Token: "tok"}))

	snap := page.Snapshot()
	require.NotNil(t, snap.Notice)
	assert.Equal(t, NoticeSuccess, snap.Notice.Kind)
	assert.Len(t, snap.Reviews, 1)

	assert.Equal(t, []events.EventType{events.EventReviewAdded}, rec.types())
	assert.Equal(t, events.ReviewAddedPayload{Rating: 4}, rec.events[0].Payload)
}
