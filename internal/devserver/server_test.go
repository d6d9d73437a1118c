package devserver

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/session"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(key string) error {
	delete(m.data, key)
	return nil
}

type recordingNav struct {
	routes []string
}

func (n *recordingNav) NavigateTo(route string) {
	n.routes = append(n.routes, route)
}

type fixture struct {
	server *Server
	ts     *httptest.Server
	client *api.Client
	sess   *session.Store
	nav    *recordingNav
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := New(ctx, Options{JWTSecret: "test-secret", Log: zerolog.Nop()})
	ts := httptest.NewServer(srv.Echo)
	t.Cleanup(ts.Close)

	client := api.NewClient(ts.URL, ts.URL, zerolog.Nop())
	nav := &recordingNav{}
	sess := session.NewStore(newMemStorage(), nav, zerolog.Nop())
	sess.Bind(api.NewAuthAPI(client))
	client.BindSession(sess)

	return &fixture{server: srv, ts: ts, client: client, sess: sess, nav: nav}
}

func (f *fixture) register(t *testing.T, username, password string, role domain.Role) {
	t.Helper()
	if _, err := f.server.Auth.Register(username, password, role, username+"@example.com", "5550001111"); err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
}

func (f *fixture) login(t *testing.T, username, password string) {
	t.Helper()
	err := f.sess.Login(context.Background(), api.LoginRequest{Username: username, UserPassword: password})
	if err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
}

func TestLoginCommitsSessionAndNavigates(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)
	f.login(t, "alice", "secret123")

	if f.sess.Token() == "" {
		t.Fatalf("token not committed")
	}
	if name, ok := f.sess.Username(); !ok || name != "alice" {
		t.Fatalf("expected username alice, got %q (%v)", name, ok)
	}
	if role, ok := f.sess.Role(); !ok || role != domain.RoleAdvertiser {
		t.Fatalf("expected advertiser role, got %q (%v)", role, ok)
	}
	if len(f.nav.routes) != 1 || f.nav.routes[0] != "Advertiser" {
		t.Fatalf("expected navigation to Advertiser, got %v", f.nav.routes)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)

	err := f.sess.Login(context.Background(), api.LoginRequest{Username: "alice", UserPassword: "wrong"})
	if err == nil {
		t.Fatalf("expected error")
	}
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if f.sess.Token() != "" {
		t.Fatalf("failed login must not commit a token")
	}
}

func TestAuthorizedAdLifecycle(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)
	f.login(t, "alice", "secret123")

	ctx := context.Background()
	adsAPI := api.NewAdvertiserAPI(f.client)

	ad, err := adsAPI.CreateAd(ctx, domain.AdMeta{
		Title:        "Summer Sale",
		AdType:       0,
		MediaURL:     "/media/banner.png",
		LandingPage:  "https://example.com/sale",
		CategoryID:   "cat-1",
		AdLayout:     1,
		WeeklyBudget: 100,
	})
	if err != nil {
		t.Fatalf("create ad: %v", err)
	}
	if ad.AdID == "" {
		t.Fatalf("expected ad id")
	}
	if ad.ReviewStatus != domain.ReviewPending {
		t.Fatalf("new ad must be pending, got %d", ad.ReviewStatus)
	}
	if ad.IsActive != 0 {
		t.Fatalf("new ad must be inactive")
	}

	page, err := adsAPI.ListAds(ctx, api.ListOwnAdsOptions{})
	if err != nil {
		t.Fatalf("list ads: %v", err)
	}
	if page.Total != 1 || len(page.Records) != 1 {
		t.Fatalf("expected one ad, got total=%d records=%d", page.Total, len(page.Records))
	}

	// Activation is refused while the ad is still pending review.
	if _, err := adsAPI.ToggleAdStatus(ctx, ad.AdID, true); err == nil {
		t.Fatalf("expected activation of a pending ad to fail")
	}
}

func TestUnauthorizedCallTearsDownSession(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)
	f.login(t, "alice", "secret123")

	// Re-login with a tampered token to force a 401 on the next call.
	mem := newMemStorage()
	sess := session.NewStore(mem, &recordingNav{}, zerolog.Nop())
	sess.Bind(api.NewAuthAPI(f.client))
	f.client.BindSession(sess)
	_ = mem.Set("auth_token", "bogus-token")

	adsAPI := api.NewAdvertiserAPI(f.client)
	_, err := adsAPI.ListAds(context.Background(), api.ListOwnAdsOptions{})
	if err == nil {
		t.Fatalf("expected error")
	}
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	if sess.Token() != "" {
		t.Fatalf("401 must clear the persisted token")
	}
}

func TestRoleGroupForbidsWrongRole(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", "secret123", domain.RolePublisher)
	f.login(t, "bob", "secret123")

	adminAPI := api.NewAdminAPI(f.client)
	_, err := adminAPI.ListAds(context.Background(), api.ListAdsOptions{})
	if err == nil {
		t.Fatalf("expected error")
	}
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.StatusCode != 403 {
		t.Fatalf("expected 403 RequestError, got %v", err)
	}
}

func TestPublisherSiteVerification(t *testing.T) {
	f := newFixture(t)
	f.register(t, "bob", "secret123", domain.RolePublisher)
	f.login(t, "bob", "secret123")

	ctx := context.Background()
	pubAPI := api.NewPublisherAPI(f.client)

	site, err := pubAPI.CreateSite(ctx, domain.WebsiteMeta{WebsiteName: "Tech Blog", Domain: "blog.example.com"})
	if err != nil {
		t.Fatalf("create site: %v", err)
	}
	if site.IsVerified != domain.SiteUnverified {
		t.Fatalf("new site must be unverified")
	}
	if site.VerificationToken == "" {
		t.Fatalf("expected verification token")
	}

	verified, err := pubAPI.VerifySite(ctx, site.WebsiteID)
	if err != nil {
		t.Fatalf("verify site: %v", err)
	}
	if !verified {
		t.Fatalf("expected verification to succeed")
	}

	// Verifying twice conflicts.
	if _, err := pubAPI.VerifySite(ctx, site.WebsiteID); err == nil {
		t.Fatalf("expected second verification to fail")
	}
}

func TestTrackingFeedsStatistics(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)
	f.login(t, "alice", "secret123")

	ctx := context.Background()
	adsAPI := api.NewAdvertiserAPI(f.client)
	ad, err := adsAPI.CreateAd(ctx, domain.AdMeta{
		Title:        "Video Promo",
		AdType:       1,
		MediaURL:     "/media/promo.mp4",
		LandingPage:  "https://example.com/promo",
		CategoryID:   "cat-1",
		AdLayout:     0,
		WeeklyBudget: 50,
	})
	if err != nil {
		t.Fatalf("create ad: %v", err)
	}

	f.server.Store.RecordEvent(ad.AdID, "impression", "2026-08-01")
	f.server.Store.RecordEvent(ad.AdID, "impression", "2026-08-01")
	f.server.Store.RecordEvent(ad.AdID, "click", "2026-08-01")

	stats, err := adsAPI.AdStats(ctx, ad.AdID, "", "")
	if err != nil {
		t.Fatalf("ad stats: %v", err)
	}
	if stats.TotalImpressions != 2 || stats.TotalClicks != 1 {
		t.Fatalf("expected 2 impressions / 1 click, got %d / %d", stats.TotalImpressions, stats.TotalClicks)
	}
}

func TestTrackEndpointEnqueues(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice", "secret123", domain.RoleAdvertiser)
	f.login(t, "alice", "secret123")

	ctx := context.Background()
	adsAPI := api.NewAdvertiserAPI(f.client)
	ad, err := adsAPI.CreateAd(ctx, domain.AdMeta{
		Title:        "Banner",
		AdType:       0,
		MediaURL:     "/media/b.png",
		LandingPage:  "https://example.com",
		CategoryID:   "cat-1",
		AdLayout:     1,
		WeeklyBudget: 10,
	})
	if err != nil {
		t.Fatalf("create ad: %v", err)
	}

	body := map[string]any{
		"events": []map[string]string{
			{"adId": ad.AdID, "kind": "impression", "date": "2026-08-02"},
			{"adId": ad.AdID, "kind": "click", "date": "2026-08-02"},
		},
	}
	if _, err := f.client.Do(ctx, "/track", api.RequestOptions{Method: "POST", Body: body}); err != nil {
		t.Fatalf("track: %v", err)
	}

	// Ingestion is asynchronous; poll until the counters land.
	deadline := time.Now().Add(2 * time.Second)
	for {
		stats, err := adsAPI.AdStats(ctx, ad.AdID, "", "")
		if err != nil {
			t.Fatalf("ad stats: %v", err)
		}
		if stats.TotalImpressions == 1 && stats.TotalClicks == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("events never aggregated: %+v", stats)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestVersionEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appAPI := api.NewAppAPI(f.client)
	version, err := appAPI.BackendVersion(ctx)
	if err != nil {
		t.Fatalf("backend version: %v", err)
	}
	if version == "" {
		t.Fatalf("expected version string")
	}

	tracker, err := appAPI.TrackerVersion(ctx)
	if err != nil {
		t.Fatalf("tracker version: %v", err)
	}
	if tracker != version {
		t.Fatalf("tracker version %q != backend version %q", tracker, version)
	}
}
