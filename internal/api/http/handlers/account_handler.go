package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/api/dto"
	"github.com/artisanfinder/web/internal/pages"
	"github.com/artisanfinder/web/internal/session"
)

// AccountHandler serves the login and register pages and logout.
type AccountHandler struct {
	pageRenderer
}

// NewAccountHandler constructs handler.
func NewAccountHandler(sessions *session.Manager) *AccountHandler {
	return &AccountHandler{pageRenderer{sessions: sessions}}
}

// ShowLogin GET /login.
func (h *AccountHandler) ShowLogin(c *fiber.Ctx) error {
	return h.login(c, pages.Mount{})
}

// SetLoginField PATCH /login.
func (h *AccountHandler) SetLoginField(c *fiber.Ctx) error {
	var req dto.FieldRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return h.login(c, pages.SetField{Field: req.Field, Value: req.Value})
}

// Login POST /login.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	return h.login(c, pages.SubmitForm{})
}

// ShowRegister GET /register.
func (h *AccountHandler) ShowRegister(c *fiber.Ctx) error {
	return h.register(c, pages.Mount{})
}

// SetRegisterField PATCH /register.
func (h *AccountHandler) SetRegisterField(c *fiber.Ctx) error {
	var req dto.FieldRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return h.register(c, pages.SetField{Field: req.Field, Value: req.Value})
}

// Register POST /register.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	return h.register(c, pages.SubmitForm{})
}

// Logout POST /logout drops the session's token and returns the home page.
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := h.sessions.ClearToken(c.UserContext(), s.ID); err != nil {
		return err
	}
	return h.render(c, s, "/", fiber.Map{"redirect": "/"})
}

func (h *AccountHandler) login(c *fiber.Ctx, cmd pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := s.Login.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, "/login", s.Login.Snapshot())
}

func (h *AccountHandler) register(c *fiber.Ctx, cmd pages.Command) error {
	s, err := session.FromContext(c)
	if err != nil {
		return err
	}
	if err := s.Register.Dispatch(c.UserContext(), cmd); err != nil {
		return err
	}
	return h.render(c, s, "/register", s.Register.Snapshot())
}
