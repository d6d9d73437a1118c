package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper the marketplace API speaks.
type envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ok renders a successful envelope. The marketplace convention is code 0
// and message "ok" on every success, with the payload under data.
func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Code: 0, Message: "ok", Data: data})
}

// pageResponse is the backend's pagination shape.
type pageResponse struct {
	Records any   `json:"records"`
	Total   int64 `json:"total"`
	Size    int   `json:"size"`
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
}
