package api

import (
	"context"
	"net/http"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// AuthAPI binds the /user endpoints.
type AuthAPI struct {
	c *Client
}

func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

type LoginRequest struct {
	Username     string `json:"username"`
	UserPassword string `json:"userPassword"`
}

// LoginResult is the payload of a successful login.
type LoginResult struct {
	Token    string      `json:"token"`
	Username string      `json:"username"`
	UserRole domain.Role `json:"userRole"`
}

type RegisterRequest struct {
	Username      string `json:"username"`
	UserPassword  string `json:"userPassword"`
	CheckPassword string `json:"checkPassword"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	UserRole      string `json:"userRole,omitempty"` // advertiser (default) or publisher
}

func (a *AuthAPI) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	env, err := a.c.Do(ctx, "/user/login", RequestOptions{Method: http.MethodPost, Body: req})
	if err != nil {
		return LoginResult{}, err
	}
	return DecodeData[LoginResult](env)
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) error {
	_, err := a.c.Do(ctx, "/user/register", RequestOptions{Method: http.MethodPost, Body: req})
	return err
}
