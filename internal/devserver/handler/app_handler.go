package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/devserver/tracker"
)

// Version is the devserver's reported backend version.
const Version = "0.3.0-dev"

// AppHandler handles application meta endpoints plus the tracking intake
// that feeds the statistics screens.
type AppHandler struct {
	ingester *tracker.Ingester
}

func NewAppHandler(ingester *tracker.Ingester) *AppHandler {
	return &AppHandler{ingester: ingester}
}

func (h *AppHandler) Version(c echo.Context) error {
	return ok(c, Version)
}

// TrackerVersion mimics the standalone tracker's static version file so
// the devserver can stand in for both origins during development.
func (h *AppHandler) TrackerVersion(c echo.Context) error {
	return c.String(http.StatusOK, Version)
}

type trackEventRequest struct {
	AdID string `json:"adId" validate:"required"`
	Kind string `json:"kind" validate:"required,oneof=impression click"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type trackRequest struct {
	Events []trackEventRequest `json:"events" validate:"required,min=1,dive"`
}

// Track accepts a batch of delivery events. Intake is fire-and-forget:
// the ingester aggregates asynchronously, per-ad ordering preserved.
func (h *AppHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	events := make([]tracker.Event, 0, len(req.Events))
	for _, e := range req.Events {
		events = append(events, tracker.Event{AdID: e.AdID, Kind: e.Kind, Date: e.Date})
	}
	h.ingester.EnqueueBatch(events)

	return ok(c, len(events))
}
