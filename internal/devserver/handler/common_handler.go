package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/adspace/adspace-cli/internal/devserver/store"
)

// CommonHandler handles endpoints shared by every authenticated role.
type CommonHandler struct {
	store *store.Store
}

func NewCommonHandler(st *store.Store) *CommonHandler {
	return &CommonHandler{store: st}
}

func (h *CommonHandler) ListCategories(c echo.Context) error {
	return ok(c, h.store.ListCategories())
}
