package handlers

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/components"
	"github.com/artisanfinder/web/internal/session"
	apperrors "github.com/artisanfinder/web/pkg/util/errorutil"
)

// pageRenderer resolves the session token and wraps page snapshots with the navbar.
type pageRenderer struct {
	sessions *session.Manager
}

func (r pageRenderer) token(c *fiber.Ctx, s *session.Session) (string, error) {
	token, err := r.sessions.Token(c.UserContext(), s.ID)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return token, nil
}

func (r pageRenderer) render(c *fiber.Ctx, s *session.Session, navPath string, page any) error {
	token, err := r.token(c, s)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.PageResponse{
		Navbar: components.NewNavbar(navPath, token != ""),
		Page:   page,
	}})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

func artisanID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid artisan id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}

func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	for k, v := range c.Queries() {
		values.Set(k, v)
	}
	return values
}
