// Package api implements the typed HTTP client for the AdSpace backend:
// one request core that injects the session's bearer token, decodes the
// uniform response envelope and normalises failures, plus per-group
// bindings for the auth, admin, advertiser, publisher, common, file and
// app endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/metrics"
)

// Session is the slice of the session store the client needs: the current
// token for outgoing requests, and teardown on authentication failure.
type Session interface {
	Token() string
	Clear()
}

// Envelope is the uniform {code, message, data} wrapper around every
// backend response. Data stays raw until a caller decodes it.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData unmarshals the envelope payload into T.
func DecodeData[T any](env *Envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode envelope data: %w", err)
	}
	return out, nil
}

// Page is the backend's pagination response shape.
type Page[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Size    int   `json:"size"`
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
}

// Client performs HTTP round trips against the configured API origin.
type Client struct {
	baseURL    string
	trackerURL string
	httpClient *http.Client
	session    Session
	log        zerolog.Logger
}

// NewClient creates an API client. No session is bound yet; unauthenticated
// calls work immediately, BindSession enables bearer injection.
func NewClient(baseURL, trackerURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		trackerURL: trackerURL,
		httpClient: &http.Client{},
		log:        log,
	}
}

// BindSession attaches the session whose token rides on every request and
// which is cleared when the backend answers 401.
func (c *Client) BindSession(s Session) {
	c.session = s
}

// Do performs one round trip and returns the decoded envelope.
//
// Failure normalisation, in order of precedence on a non-2xx status:
// envelope message, raw body text, transport status text. A 401 clears the
// bound session before the error is returned, so callers can never keep
// acting on stale authenticated state.
func (c *Client) Do(ctx context.Context, path string, opts RequestOptions) (*Envelope, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + path
	if q := opts.Params.Encode(); q != "" {
		fullURL += "?" + q
	}

	var bodyReader io.Reader
	contentType := ""
	switch body := opts.Body.(type) {
	case nil:
	case *FormPayload:
		bodyReader = body.Reader
		contentType = body.ContentType
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	if req.Header.Get("Authorization") == "" && c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.log.Debug().Str("method", method).Str("url", fullURL).Msg("api request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.RequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.RequestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(respBody)).Msg("api response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var env Envelope
		parsed := json.Unmarshal(respBody, &env) == nil

		if resp.StatusCode == http.StatusUnauthorized {
			metrics.AuthFailuresTotal.Inc()
			if c.session != nil {
				c.session.Clear()
			}
			msg := "authentication required"
			if parsed && env.Message != "" {
				msg = env.Message
			}
			return nil, &AuthError{Message: msg}
		}

		msg := resp.Status
		switch {
		case parsed && env.Message != "":
			msg = env.Message
		case len(respBody) > 0:
			msg = string(respBody)
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	var env Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	return &env, nil
}

// TrackerGet fetches a plain-text resource from the tracker origin. The
// tracker is a separate static deployment and does not use the envelope.
func (c *Client) TrackerGet(ctx context.Context, path string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.trackerURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &RequestError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return string(body), nil
}
