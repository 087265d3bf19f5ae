package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/session"
)

// HomeHandler serves the landing page.
type HomeHandler struct {
	pageRenderer
}

// NewHomeHandler constructs handler.
func NewHomeHandler(sessions *session.Manager) *HomeHandler {
	return &HomeHandler{pageRenderer{sessions: sessions}}
}

// Show GET /.
func (h *HomeHandler) Show(c *fiber.Ctx) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := s.Home.Dispatch(c.UserContext(), pages.Mount{}); err != nil {
		return err
	}
	return h.render(c, s, "/", s.Home.Snapshot())
}

// Search POST / with the search bar values; the snapshot carries the redirect.
func (h *HomeHandler) Search(c *fiber.Ctx) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := s.Home.Dispatch(c.UserContext(), pages.SubmitSearch{Skill: req.Skill, Location: req.Location}); err != nil {
		return err
	}
	return h.render(c, s, "/", s.Home.Snapshot())
}
