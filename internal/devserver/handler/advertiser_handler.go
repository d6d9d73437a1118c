package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/store"
)

// AdvertiserHandler handles the /advertisers endpoints. Ownership checks
// run against the username claim injected by the Auth middleware.
type AdvertiserHandler struct {
	store *store.Store
}

func NewAdvertiserHandler(st *store.Store) *AdvertiserHandler {
	return &AdvertiserHandler{store: st}
}

type adMetaRequest struct {
	Title        string  `json:"title"        validate:"required"`
	AdType       int     `json:"adType"       validate:"oneof=0 1"`
	MediaURL     string  `json:"mediaUrl"     validate:"required"`
	LandingPage  string  `json:"landingPage"  validate:"required,url"`
	CategoryID   string  `json:"categoryId"   validate:"required"`
	AdLayout     int     `json:"adLayout"     validate:"oneof=0 1 2"`
	WeeklyBudget float64 `json:"weeklyBudget" validate:"required,gt=0"`
}

func (r adMetaRequest) meta() domain.AdMeta {
	return domain.AdMeta{
		Title:        r.Title,
		AdType:       r.AdType,
		MediaURL:     r.MediaURL,
		LandingPage:  r.LandingPage,
		CategoryID:   r.CategoryID,
		AdLayout:     r.AdLayout,
		WeeklyBudget: r.WeeklyBudget,
	}
}

// reviewStatusNames maps the query-string filter to its numeric code.
var reviewStatusNames = map[string]int{
	"pending":  domain.ReviewPending,
	"approved": domain.ReviewApproved,
	"rejected": domain.ReviewRejected,
}

func (h *AdvertiserHandler) ListAds(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	filter := store.AdsFilter{}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PageSize, _ = strconv.Atoi(c.QueryParam("pageSize"))
	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid isActive filter")
		}
		filter.IsActive = &active
	}
	if raw := c.QueryParam("reviewStatus"); raw != "" {
		status, ok := reviewStatusNames[raw]
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid reviewStatus filter")
		}
		filter.ReviewStatus = &status
	}

	page := h.store.ListAds(username, filter)
	return ok(c, pageResponse{
		Records: page.Records,
		Total:   page.Total,
		Size:    page.Size,
		Current: page.Current,
		Pages:   page.Pages,
	})
}

func (h *AdvertiserHandler) CreateAd(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req adMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ok(c, h.store.CreateAd(username, req.meta()))
}

func (h *AdvertiserHandler) GetAd(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ad, err := h.store.GetAd(username, c.Param("adId"))
	if err != nil {
		return err
	}
	return ok(c, ad)
}

func (h *AdvertiserHandler) UpdateAd(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req adMetaRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ad, err := h.store.UpdateAd(username, c.Param("adId"), req.meta())
	if err != nil {
		return err
	}
	return ok(c, ad)
}

func (h *AdvertiserHandler) DeleteAd(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteAd(username, c.Param("adId")); err != nil {
		return err
	}
	return ok(c, true)
}

type toggleAdStatusRequest struct {
	IsActive bool `json:"isActive"`
}

func (h *AdvertiserHandler) ToggleAdStatus(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req toggleAdStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	ad, err := h.store.ToggleAd(username, c.Param("adId"), req.IsActive)
	if err != nil {
		return err
	}
	return ok(c, ad)
}

func (h *AdvertiserHandler) AdStats(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	stats, err := h.store.AdStats(username, c.Param("adId"), c.QueryParam("startDate"), c.QueryParam("endDate"))
	if err != nil {
		return err
	}
	return ok(c, stats)
}

func (h *AdvertiserHandler) Summary(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return ok(c, h.store.AdvertiserSummary(username))
}

type companyNameRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
}

func (h *AdvertiserHandler) SetCompanyName(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req companyNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.store.SetCompanyName(username, req.CompanyName); err != nil {
		return err
	}
	return ok(c, map[string]string{"companyName": req.CompanyName})
}

func (h *AdvertiserHandler) PaymentMethods(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return ok(c, h.store.PaymentMethods(username))
}

type addPaymentMethodRequest struct {
	BankName   string `json:"bankName"   validate:"required"`
	CardNumber string `json:"cardNumber" validate:"required,min=12"`
}

func (h *AdvertiserHandler) AddPaymentMethod(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	var req addPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ok(c, h.store.AddPaymentMethod(username, req.BankName, req.CardNumber))
}

func (h *AdvertiserHandler) Profile(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.store.Profile(username)
	if err != nil {
		return err
	}
	return ok(c, profile)
}
