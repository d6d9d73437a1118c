package api

import (
	"context"
	"net/http"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// PublisherAPI binds the /publishers endpoints.
type PublisherAPI struct {
	c *Client
}

func NewPublisherAPI(c *Client) *PublisherAPI {
	return &PublisherAPI{c: c}
}

func (p *PublisherAPI) CreateSite(ctx context.Context, meta domain.WebsiteMeta) (domain.Website, error) {
	env, err := p.c.Do(ctx, "/publishers/sites", RequestOptions{Method: http.MethodPost, Body: meta})
	if err != nil {
		return domain.Website{}, err
	}
	return DecodeData[domain.Website](env)
}

func (p *PublisherAPI) ListSites(ctx context.Context) ([]domain.Website, error) {
	env, err := p.c.Do(ctx, "/publishers/sites", RequestOptions{})
	if err != nil {
		return nil, err
	}
	return DecodeData[[]domain.Website](env)
}

func (p *PublisherAPI) GetSite(ctx context.Context, websiteID string) (domain.Website, error) {
	env, err := p.c.Do(ctx, "/publishers/sites/"+websiteID, RequestOptions{})
	if err != nil {
		return domain.Website{}, err
	}
	return DecodeData[domain.Website](env)
}

// VerifySite asks the backend to check the site's verification token.
func (p *PublisherAPI) VerifySite(ctx context.Context, websiteID string) (bool, error) {
	env, err := p.c.Do(ctx, "/publishers/sites/"+websiteID+"/verification", RequestOptions{Method: http.MethodPost})
	if err != nil {
		return false, err
	}
	return DecodeData[bool](env)
}

func (p *PublisherAPI) Statistics(ctx context.Context, startDate, endDate string) (domain.PublisherStats, error) {
	var params Params
	if startDate != "" {
		params = params.With("startDate", startDate)
	}
	if endDate != "" {
		params = params.With("endDate", endDate)
	}
	env, err := p.c.Do(ctx, "/publishers/statistics", RequestOptions{Params: params})
	if err != nil {
		return domain.PublisherStats{}, err
	}
	return DecodeData[domain.PublisherStats](env)
}
