package api

import "context"

// AppAPI binds the application meta endpoints.
type AppAPI struct {
	c *Client
}

func NewAppAPI(c *Client) *AppAPI {
	return &AppAPI{c: c}
}

// BackendVersion returns the backend's reported version string.
func (a *AppAPI) BackendVersion(ctx context.Context) (string, error) {
	env, err := a.c.Do(ctx, "/app/version", RequestOptions{})
	if err != nil {
		return "", err
	}
	return DecodeData[string](env)
}

// TrackerVersion fetches the ad tracker's version file from the tracker
// origin. The tracker serves plain text, not the envelope.
func (a *AppAPI) TrackerVersion(ctx context.Context) (string, error) {
	return a.c.TrackerGet(ctx, "/version.txt")
}
