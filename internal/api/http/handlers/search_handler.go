package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/search"
	"github.com/artisanfinder/web/internal/session"
)

// SearchHandler serves the search results page.
type SearchHandler struct {
	pageRenderer
}

// NewSearchHandler constructs handler.
func NewSearchHandler(sessions *session.Manager) *SearchHandler {
	return &SearchHandler{pageRenderer{sessions: sessions}}
}

// Show GET /search?skill=&location=.
func (h *SearchHandler) Show(c *fiber.Ctx) error {
	return h.dispatch(c, pages.Mount{Query: search.ParseQuery(queryValues(c))})
}

// Submit POST /search.
func (h *SearchHandler) Submit(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, pages.SubmitSearch{Skill: req.Skill, Location: req.Location})
}

// Retry POST /search/retry.
func (h *SearchHandler) Retry(c *fiber.Ctx) error {
	return h.dispatch(c, pages.Retry{})
}

func (h *SearchHandler) dispatch(c *fiber.Ctx, cmd pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := s.Search.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, search.Path, s.Search.Snapshot())
}
