package apiclient

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/domain"
)

const resourceArtisan = "artisan"

// ListArtisans handles GET /artisans.
func (c *Client) ListArtisans(ctx context.Context) ([]domain.Artisan, error) {
	var artisans []domain.Artisan
	if err := c.do(ctx, request{method: fiber.MethodGet, path: "/artisans", resource: resourceArtisan}, &artisans); err != nil {
		return nil, err
	}
	if artisans == nil {
		artisans = []domain.Artisan{}
	}
	return artisans, nil
}

// GetArtisan handles GET /artisans/{id}.
func (c *Client) GetArtisan(ctx context.Context, id int) (*domain.Artisan, error) {
	var artisan domain.Artisan
	if err := c.do(ctx, request{method: fiber.MethodGet, path: artisanPath(id), resource: resourceArtisan}, &artisan); err != nil {
		return nil, err
	}
	return &artisan, nil
}

// CreateArtisan handles POST /artisans.
func (c *Client) CreateArtisan(ctx context.Context, artisan domain.Artisan, token string) (*domain.Artisan, error) {
	artisan.ID = 0
	var created domain.Artisan
	err := c.do(ctx, request{
		method:   fiber.MethodPost,
		path:     "/artisans",
		resource: resourceArtisan,
		token:    token,
		body:     artisan,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateArtisan handles PUT /artisans/{id} with the full record.
func (c *Client) UpdateArtisan(ctx context.Context, id int, artisan domain.Artisan, token string) (*domain.Artisan, error) {
	artisan.ID = id
	updated := artisan
	err := c.do(ctx, request{
		method:   fiber.MethodPut,
		path:     artisanPath(id),
		resource: resourceArtisan,
		token:    token,
		body:     artisan,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteArtisan handles DELETE /artisans/{id}.
func (c *Client) DeleteArtisan(ctx context.Context, id int, token string) error {
	return c.do(ctx, request{
		method:   fiber.MethodDelete,
		path:     artisanPath(id),
		resource: resourceArtisan,
		token:    token,
	}, nil)
}

func artisanPath(id int) string {
	return "/artisans/" + strconv.Itoa(id)
}
