package apiclient

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/domain"
)

const resourceReview = "review"

// ListReviews handles GET /reviews/{artisanId}.
func (c *Client) ListReviews(ctx context.Context, artisanID int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := c.do(ctx, request{
		method:   fiber.MethodGet,
		path:     "/reviews/" + strconv.Itoa(artisanID),
		resource: resourceReview,
	}, &reviews)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// CreateReview handles POST /reviews.
func (c *Client) CreateReview(ctx context.Context, review domain.Review, token string) (*domain.Review, error) {
	review.ID = 0
	var created domain.Review
	err := c.do(ctx, request{
		method:   fiber.MethodPost,
		path:     "/reviews",
		resource: resourceReview,
		token:    token,
		body:     review,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
