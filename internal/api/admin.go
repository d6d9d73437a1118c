package api

import (
	"context"
	"net/http"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// AdminAPI binds the /admin endpoints.
type AdminAPI struct {
	c *Client
}

func NewAdminAPI(c *Client) *AdminAPI {
	return &AdminAPI{c: c}
}

// ListAdsOptions filters the marketplace-wide ad listing. Status is a
// pointer so that the falsy-but-meaningful value 0 (pending) survives.
type ListAdsOptions struct {
	PageParams
	Status *int
}

func (a *AdminAPI) ListAds(ctx context.Context, opts ListAdsOptions) ([]domain.Ad, error) {
	params := opts.PageParams.apply(nil)
	if opts.Status != nil {
		params = params.With("status", *opts.Status)
	}
	env, err := a.c.Do(ctx, "/admin/ads", RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}
	return DecodeData[[]domain.Ad](env)
}

type ReviewAdRequest struct {
	Status int    `json:"status"`
	Reason string `json:"reason"`
}

func (a *AdminAPI) ReviewAd(ctx context.Context, adID string, req ReviewAdRequest) (domain.Ad, error) {
	env, err := a.c.Do(ctx, "/admin/ads/"+adID+"/review", RequestOptions{Method: http.MethodPut, Body: req})
	if err != nil {
		return domain.Ad{}, err
	}
	return DecodeData[domain.Ad](env)
}

type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName"`
}

func (a *AdminAPI) CreateCategory(ctx context.Context, req CreateCategoryRequest) (domain.AdCategory, error) {
	env, err := a.c.Do(ctx, "/admin/categories", RequestOptions{Method: http.MethodPost, Body: req})
	if err != nil {
		return domain.AdCategory{}, err
	}
	return DecodeData[domain.AdCategory](env)
}

// ListUsers returns accounts, optionally filtered by role.
func (a *AdminAPI) ListUsers(ctx context.Context, role domain.Role) ([]domain.User, error) {
	var params Params
	if role != "" {
		params = params.With("role", string(role))
	}
	env, err := a.c.Do(ctx, "/admin/users", RequestOptions{Params: params})
	if err != nil {
		return nil, err
	}
	return DecodeData[[]domain.User](env)
}

type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

func (a *AdminAPI) CreateAdmin(ctx context.Context, req CreateAdminRequest) (domain.User, error) {
	env, err := a.c.Do(ctx, "/admin/users", RequestOptions{Method: http.MethodPost, Body: req})
	if err != nil {
		return domain.User{}, err
	}
	return DecodeData[domain.User](env)
}
