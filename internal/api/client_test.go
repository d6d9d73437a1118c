package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type stubSession struct {
	token   string
	cleared bool
}

func (s *stubSession) Token() string { return s.token }

func (s *stubSession) Clear() {
	s.cleared = true
	s.token = ""
}

func newTestClient(serverURL string, sess Session) *Client {
	c := NewClient(serverURL, serverURL, zerolog.Nop())
	if sess != nil {
		c.BindSession(sess)
	}
	return c
}

func okEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"code": 0, "message": "ok", "data": data})
}

func TestDo_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubSession{token: "tok-123"})
	if _, err := c.Do(context.Background(), "/x", RequestOptions{}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestDo_CallerAuthorizationWins(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubSession{token: "tok-123"})
	_, err := c.Do(context.Background(), "/x", RequestOptions{
		Headers: map[string]string{"Authorization": "Basic abc"},
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if gotAuth != "Basic abc" {
		t.Fatalf("caller header should win, got %q", gotAuth)
	}
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, &stubSession{})
	if _, err := c.Do(context.Background(), "/x", RequestOptions{}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestDo_JSONBodyAndContentType(t *testing.T) {
	var gotContentType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	_, err := c.Do(context.Background(), "/x", RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"title": "Summer sale"},
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if gotContentType != "application/json" {
		t.Fatalf("expected application/json, got %q", gotContentType)
	}
	if gotBody != `{"title":"Summer sale"}` {
		t.Fatalf("body mismatch: %s", gotBody)
	}
}

func TestDo_FormPayloadKeepsOwnContentType(t *testing.T) {
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	form, err := NewFileForm("file", "banner.png", strings.NewReader("pngbytes"))
	if err != nil {
		t.Fatalf("NewFileForm: %v", err)
	}

	c := newTestClient(srv.URL, nil)
	if _, err := c.Do(context.Background(), "/upload", RequestOptions{Method: http.MethodPost, Body: form}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data; boundary=") {
		t.Fatalf("expected multipart content type with boundary, got %q", gotContentType)
	}
}

func TestDo_Unauthorized_ClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 40100, "message": "token expired"})
	}))
	defer srv.Close()

	sess := &stubSession{token: "stale"}
	c := newTestClient(srv.URL, sess)

	_, err := c.Do(context.Background(), "/x", RequestOptions{})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "token expired" {
		t.Fatalf("expected envelope message, got %q", authErr.Message)
	}
	if !sess.cleared {
		t.Fatalf("session must be cleared on 401")
	}
}

func TestDo_Unauthorized_FallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := &stubSession{token: "stale"}
	c := newTestClient(srv.URL, sess)

	_, err := c.Do(context.Background(), "/x", RequestOptions{})
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if authErr.Message != "authentication required" {
		t.Fatalf("expected fallback message, got %q", authErr.Message)
	}
	if !sess.cleared {
		t.Fatalf("session must be cleared even without an envelope")
	}
}

func TestDo_RequestError_MessagePreference(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "envelope message",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{"code": 40000, "message": "weekly budget too low"})
			},
			want: "weekly budget too low",
		},
		{
			name: "raw body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				_, _ = w.Write([]byte("upstream exploded"))
			},
			want: "upstream exploded",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := newTestClient(srv.URL, nil)
			_, err := c.Do(context.Background(), "/x", RequestOptions{})
			var reqErr *RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected RequestError, got %v", err)
			}
			if reqErr.Message != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, reqErr.Message)
			}
		})
	}
}

func TestDo_RequestError_StatusTextFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	_, err := c.Do(context.Background(), "/x", RequestOptions{})
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("unexpected status: %d", reqErr.StatusCode)
	}
	if !strings.Contains(reqErr.Message, "Service Unavailable") {
		t.Fatalf("expected status text fallback, got %q", reqErr.Message)
	}
}

func TestDo_QueryParamsOnWire(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		okEnvelope(w, nil)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	params := Params{}.
		With("page", 1).
		With("status", 0).
		With("q", "").
		With("isActive", false).
		With("skipped", nil)
	if _, err := c.Do(context.Background(), "/x", RequestOptions{Params: params}); err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if gotQuery != "page=1&status=0&q=&isActive=false" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
}

func TestDo_SuccessReturnsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		okEnvelope(w, map[string]string{"categoryId": "c1", "categoryName": "Tech"})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, nil)
	env, err := c.Do(context.Background(), "/x", RequestOptions{})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if env.Code != 0 || env.Message != "ok" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	data, err := DecodeData[map[string]string](env)
	if err != nil {
		t.Fatalf("DecodeData: %v", err)
	}
	if data["categoryName"] != "Tech" {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestDo_TransportFailure(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1", nil)
	_, err := c.Do(context.Background(), "/x", RequestOptions{})
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var authErr *AuthError
	var reqErr *RequestError
	if errors.As(err, &authErr) || errors.As(err, &reqErr) {
		t.Fatalf("transport failure must not look like an API error: %v", err)
	}
}
