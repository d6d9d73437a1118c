package api

import (
	"context"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// CommonAPI binds the endpoints shared by all authenticated roles.
type CommonAPI struct {
	c *Client
}

func NewCommonAPI(c *Client) *CommonAPI {
	return &CommonAPI{c: c}
}

func (a *CommonAPI) ListCategories(ctx context.Context) ([]domain.AdCategory, error) {
	env, err := a.c.Do(ctx, "/common/categories", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return DecodeData[[]domain.AdCategory](env)
}
