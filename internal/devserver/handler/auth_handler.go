package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/auth"
)

// AuthHandler handles the /user endpoints.
type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(auth *auth.Service) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type registerRequest struct {
	Username      string `json:"username"      validate:"required,min=3"`
	UserPassword  string `json:"userPassword"  validate:"required,min=6"`
	CheckPassword string `json:"checkPassword" validate:"required,eqfield=UserPassword"`
	Phone         string `json:"phone"         validate:"required"`
	Email         string `json:"email"         validate:"required,email"`
	UserRole      string `json:"userRole"      validate:"omitempty,oneof=advertiser publisher"`
}

type loginRequest struct {
	Username     string `json:"username"     validate:"required"`
	UserPassword string `json:"userPassword" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserRole string `json:"userRole"`
}

// Register creates a new advertiser or publisher account. Admin accounts
// are only created by other admins via /admin/users.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role := domain.Role(req.UserRole)
	if role == "" {
		role = domain.RoleAdvertiser
	}

	user, err := h.auth.Register(req.Username, req.UserPassword, role, req.Email, req.Phone)
	if err != nil {
		return err
	}
	return ok(c, user)
}

// Login authenticates and returns the token + identity payload the
// client's session store commits.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(req.Username, req.UserPassword)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return err
	}

	return ok(c, loginResponse{
		Token:    token,
		Username: user.Username,
		UserRole: string(user.UserRole),
	})
}
