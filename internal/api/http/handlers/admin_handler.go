package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/session"
)

const adminPath = "/admin"

// AdminHandler serves the artisan management page.
type AdminHandler struct {
	pageRenderer
}

// NewAdminHandler constructs handler.
func NewAdminHandler(sessions *session.Manager) *AdminHandler {
	return &AdminHandler{pageRenderer{sessions: sessions}}
}

// Show GET /admin.
func (h *AdminHandler) Show(c *fiber.Ctx) error {
	return h.dispatch(c, pages.Mount{})
}

// Retry POST /admin/retry.
func (h *AdminHandler) Retry(c *fiber.Ctx) error {
	return h.dispatch(c, pages.Retry{})
}

// StartCreate POST /admin/draft.
func (h *AdminHandler) StartCreate(c *fiber.Ctx) error {
	return h.dispatch(c, pages.StartCreate{})
}

// StartEdit POST /admin/draft/:id.
func (h *AdminHandler) StartEdit(c *fiber.Ctx) error {
	id, err := artisanID(c)
	if err != nil {
		return err
	}
	return h.dispatch(c, pages.StartEdit{ID: id})
}

// SetField PATCH /admin/draft.
func (h *AdminHandler) SetField(c *fiber.Ctx) error {
	var req dto.FieldRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, pages.SetField{Field: req.Field, Value: req.Value})
}

// Cancel DELETE /admin/draft.
func (h *AdminHandler) Cancel(c *fiber.Ctx) error {
	return h.dispatch(c, pages.CancelEdit{})
}

// Submit POST /admin/draft/submit.
func (h *AdminHandler) Submit(c *fiber.Ctx) error {
	return h.withToken(c, func(token string) pages.Command {
		return pages.SubmitForm{Token: token}
	})
}

// Delete DELETE /admin/artisans/:id.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := artisanID(c)
	if err != nil {
		return err
	}
	return h.withToken(c, func(token string) pages.Command {
		return pages.DeleteArtisan{ID: id, Token: token}
	})
}

func (h *AdminHandler) withToken(c *fiber.Ctx, build func(token string) pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	token, err := h.token(c, s)
	if err != nil {
		return err
	}
	return h.dispatchTo(c, s, build(token))
}

func (h *AdminHandler) dispatch(c *fiber.Ctx, cmd pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	return h.dispatchTo(c, s, cmd)
}

func (h *AdminHandler) dispatchTo(c *fiber.Ctx, s *session.Session, cmd pages.Command) error {
	if err := s.Admin.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, adminPath, s.Admin.Snapshot())
}
