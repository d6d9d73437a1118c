package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/store"
)

// PublisherHandler handles the /publishers endpoints.
type PublisherHandler struct {
	store *store.Store
}

func NewPublisherHandler(st *store.Store) *PublisherHandler {
	return &PublisherHandler{store: st}
}

type websiteMetaRequest struct {
	WebsiteName string `json:"websiteName" validate:"required"`
	Domain      string `json:"domain"      validate:"required,fqdn"`
}

func (h *PublisherHandler) CreateSite(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req websiteMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	site := h.store.CreateSite(username, domain.WebsiteMeta{
		WebsiteName: req.WebsiteName,
		Domain:      req.Domain,
	})
	return ok(c, site)
}

func (h *PublisherHandler) ListSites(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return ok(c, h.store.ListSites(username))
}

func (h *PublisherHandler) GetSite(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	site, err := h.store.GetSite(username, c.Param("websiteId"))
	if err != nil {
		return err
	}
	return ok(c, site)
}

func (h *PublisherHandler) VerifySite(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	verified, err := h.store.VerifySite(username, c.Param("websiteId"))
	if err != nil {
		return err
	}
	return ok(c, verified)
}

func (h *PublisherHandler) Statistics(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	stats := h.store.PublisherStats(c.QueryParam("startDate"), c.QueryParam("endDate"))
	return ok(c, stats)
}
