package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/session"
)

// ProfileHandler serves the artisan profile page.
type ProfileHandler struct {
	pageRenderer
}

// NewProfileHandler constructs handler.
func NewProfileHandler(sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{pageRenderer{sessions: sessions}}
}

// Show GET /artisan/:id. An id that is not a number shows the page's error state.
func (h *ProfileHandler) Show(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	return h.dispatch(c, pages.Mount{ID: id})
}

// Retry POST /artisan/:id/retry. The page remounts when it currently shows another artisan.
func (h *ProfileHandler) Retry(c *fiber.Ctx) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	id, err := artisanID(c)
	if err != nil {
		return err
	}
	var cmd pages.Command = pages.Retry{}
	if s.Profile.Snapshot().ArtisanID != id {
		cmd = pages.Mount{ID: id}
	}
	return h.dispatch(c, cmd)
}

// AddReview POST /artisan/:id/reviews.
func (h *ProfileHandler) AddReview(c *fiber.Ctx) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	id, err := artisanID(c)
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if s.Profile.Snapshot().ArtisanID != id {
		if err := s.Profile.Dispatch(c.UserContext(), pages.Mount{ID: id}); err != nil {
			return err
		}
	}
	token, err := h.token(c, s)
	if err != nil {
		return err
	}
	cmd := pages.SubmitReview{Rating: req.Rating, Comment: req.Comment, Token: token}
	if err := s.Profile.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, "", s.Profile.Snapshot())
}

func (h *ProfileHandler) dispatch(c *fiber.Ctx, cmd pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := s.Profile.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, "", s.Profile.Snapshot())
}
