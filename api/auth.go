package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Govind-619/Storefront/models"
)

type userEnvelope struct {
	User models.AuthUser `json:"user"`
}

// Login exchanges credentials for an access token and role
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthUser, error) {
	var env userEnvelope
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &env); err != nil {
		return nil, err
	}
	if env.User.AccessToken == "" {
		return nil, errors.New("login response carried no access token")
	}
	return &env.User, nil
}

// SignUp registers an account
func (c *Client) SignUp(ctx context.Context, req models.SignUpRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/sign-up", req, nil)
}
