package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/auth"
	"github.com/adspace/adspace-cli/internal/devserver/store"
)

// AdminHandler handles the /admin endpoints.
type AdminHandler struct {
	store *store.Store
	auth  *auth.Service
}

func NewAdminHandler(st *store.Store, authSvc *auth.Service) *AdminHandler {
	return &AdminHandler{store: st, auth: authSvc}
}

// ListAds returns the marketplace-wide moderation queue, optionally
// filtered by review status.
func (h *AdminHandler) ListAds(c echo.Context) error {
	var status *int
	if raw := c.QueryParam("status"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		status = &v
	}
	return ok(c, h.store.ListAllAds(status))
}

type reviewAdRequest struct {
	Status int    `json:"status" validate:"oneof=1 2"`
	Reason string `json:"reason"`
}

// ReviewAd applies an admin verdict to an ad. A rejection requires a reason.
func (h *AdminHandler) ReviewAd(c echo.Context) error {
	var req reviewAdRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Status == domain.ReviewRejected && req.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reason is required when rejecting")
	}

	ad, err := h.store.ReviewAd(c.Param("adId"), req.Status)
	if err != nil {
		return err
	}
	return ok(c, ad)
}

type createCategoryRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ok(c, h.store.CreateCategory(req.CategoryName))
}

// ListUsers returns accounts, optionally filtered by ?role=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	role := domain.Role(c.QueryParam("role"))
	if role != "" && !domain.ValidRole(role) {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid role filter")
	}
	return ok(c, h.store.ListUsers(role))
}

type createAdminRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"required"`
}

// CreateAdmin provisions another admin account.
func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(req.Username, req.Password, domain.RoleAdmin, req.Email, req.Phone)
	if err != nil {
		return err
	}
	return ok(c, user)
}
