package api

import (
	"context"
	"net/http"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// AdvertiserAPI binds the /advertisers endpoints.
type AdvertiserAPI struct {
	c *Client
}

func NewAdvertiserAPI(c *Client) *AdvertiserAPI {
	return &AdvertiserAPI{c: c}
}

// ListOwnAdsOptions filters the advertiser's own ad listing.
type ListOwnAdsOptions struct {
	PageParams
	IsActive     *bool
	ReviewStatus string // "pending", "approved" or "rejected"
}

func (a *AdvertiserAPI) ListAds(ctx context.Context, opts ListOwnAdsOptions) (Page[domain.Ad], error) {
	params := opts.PageParams.apply(nil)
	if opts.IsActive != nil {
		params = params.With("isActive", *opts.IsActive)
	}
	if opts.ReviewStatus != "" {
		params = params.With("reviewStatus", opts.ReviewStatus)
	}
	env, err := a.c.Do(ctx, "/advertisers/ads", RequestOptions{Params: params})
	if err != nil {
		return Page[domain.Ad]{}, err
	}
	return DecodeData[Page[domain.Ad]](env)
}

func (a *AdvertiserAPI) CreateAd(ctx context.Context, meta domain.AdMeta) (domain.Ad, error) {
	env, err := a.c.Do(ctx, "/advertisers/ads", RequestOptions{Method: http.MethodPost, Body: meta})
	if err != nil {
		return domain.Ad{}, err
	}
	return DecodeData[domain.Ad](env)
}

func (a *AdvertiserAPI) GetAd(ctx context.Context, adID string) (domain.Ad, error) {
	env, err := a.c.Do(ctx, "/advertisers/ads/"+adID, RequestOptions{})
	if err != nil {
		return domain.Ad{}, err
	}
	return DecodeData[domain.Ad](env)
}

func (a *AdvertiserAPI) UpdateAd(ctx context.Context, adID string, meta domain.AdMeta) (domain.Ad, error) {
	env, err := a.c.Do(ctx, "/advertisers/ads/"+adID, RequestOptions{Method: http.MethodPut, Body: meta})
	if err != nil {
		return domain.Ad{}, err
	}
	return DecodeData[domain.Ad](env)
}

func (a *AdvertiserAPI) DeleteAd(ctx context.Context, adID string) (bool, error) {
	env, err := a.c.Do(ctx, "/advertisers/ads/"+adID, RequestOptions{Method: http.MethodDelete})
	if err != nil {
		return false, err
	}
	return DecodeData[bool](env)
}

// AdStats returns per-ad delivery statistics, optionally bounded by
// inclusive start/end dates in YYYY-MM-DD form.
func (a *AdvertiserAPI) AdStats(ctx context.Context, adID, startDate, endDate string) (domain.AdStats, error) {
	var params Params
	if startDate != "" {
		params = params.With("startDate", startDate)
	}
	if endDate != "" {
		params = params.With("endDate", endDate)
	}
	env, err := a.c.Do(ctx, "/advertisers/ads/"+adID+"/statistics", RequestOptions{Params: params})
	if err != nil {
		return domain.AdStats{}, err
	}
	return DecodeData[domain.AdStats](env)
}

func (a *AdvertiserAPI) Summary(ctx context.Context) (domain.AdvertiserSummary, error) {
	env, err := a.c.Do(ctx, "/advertisers/statistics/summary", RequestOptions{})
	if err != nil {
		return domain.AdvertiserSummary{}, err
	}
	return DecodeData[domain.AdvertiserSummary](env)
}

type ToggleAdStatusRequest struct {
	IsActive bool `json:"isActive"`
}

func (a *AdvertiserAPI) ToggleAdStatus(ctx context.Context, adID string, active bool) (domain.Ad, error) {
	env, err := a.c.Do(ctx, "/advertisers/ads/"+adID+"/status", RequestOptions{
		Method: http.MethodPut,
		Body:   ToggleAdStatusRequest{IsActive: active},
	})
	if err != nil {
		return domain.Ad{}, err
	}
	return DecodeData[domain.Ad](env)
}

type CompanyNameRequest struct {
	CompanyName string `json:"companyName"`
}

func (a *AdvertiserAPI) SetCompanyName(ctx context.Context, name string) error {
	_, err := a.c.Do(ctx, "/advertisers/company-name", RequestOptions{
		Method: http.MethodPost,
		Body:   CompanyNameRequest{CompanyName: name},
	})
	return err
}

func (a *AdvertiserAPI) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	env, err := a.c.Do(ctx, "/advertisers/payment-methods", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return DecodeData[[]domain.PaymentMethod](env)
}

type AddPaymentMethodRequest struct {
	BankName   string `json:"bankName"`
	CardNumber string `json:"cardNumber"`
}

func (a *AdvertiserAPI) AddPaymentMethod(ctx context.Context, req AddPaymentMethodRequest) (domain.PaymentMethod, error) {
	env, err := a.c.Do(ctx, "/advertisers/payment-methods", RequestOptions{Method: http.MethodPost, Body: req})
	if err != nil {
		return domain.PaymentMethod{}, err
	}
	return DecodeData[domain.PaymentMethod](env)
}

func (a *AdvertiserAPI) Profile(ctx context.Context) (domain.AdvertiserProfile, error) {
	env, err := a.c.Do(ctx, "/advertisers/profile", RequestOptions{})
	if err != nil {
		return domain.AdvertiserProfile{}, err
	}
	return DecodeData[domain.AdvertiserProfile](env)
}
