package apiclient

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/artisanfinder/web/internal/domain"
)

const resourceUser = "user"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser handles POST /users/register.
func (c *Client) RegisterUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var created domain.User
	err := c.do(ctx, request{
		method:   fiber.MethodPost,
		path:     "/users/register",
		resource: resourceUser,
		body:     user,
	}, &created)
	if err != nil {
		return nil, err
	}
	created.Password = ""
	return &created, nil
}

// LoginUser handles POST /users/login.
func (c *Client) LoginUser(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	var result domain.LoginResult
	err := c.do(ctx, request{
		method:   fiber.MethodPost,
		path:     "/users/login",
		resource: resourceUser,
		body:     loginRequest{Email: email, Password: password},
	}, &result)
	if err != nil {
		return nil, err
	}
	result.User.Password = ""
	return &result, nil
}
