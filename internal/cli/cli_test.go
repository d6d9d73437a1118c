package cli

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver"
)

// startTestServer starts an in-memory marketplace server and returns its URL.
func startTestServer(t *testing.T) (string, *devserver.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	srv := devserver.New(ctx, devserver.Options{JWTSecret: "cli-test-secret", Log: zerolog.Nop()})
	ts := httptest.NewServer(srv.Echo)
	t.Cleanup(ts.Close)
	return ts.URL, srv
}

// run executes the CLI with args against the given server, using dir for
// session state, and returns the combined output.
func run(t *testing.T, serverURL, dir string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append([]string{"--server", serverURL, "--tracker", serverURL, "--state-dir", dir, "--log-level", "error"}, args...))
	err := root.Execute()
	return buf.String(), err
}

func TestLoginLogoutFlow(t *testing.T) {
	url, srv := startTestServer(t)
	dir := t.TempDir()

	if _, err := srv.Auth.Register("alice", "secret123", domain.RoleAdvertiser, "alice@example.com", "5550001111"); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := run(t, url, dir, "login", "-u", "alice", "-p", "secret123")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "→ Advertiser") {
		t.Fatalf("expected navigation to Advertiser, got:\n%s", out)
	}
	if !strings.Contains(out, "Logged in as alice") {
		t.Fatalf("expected login confirmation, got:\n%s", out)
	}

	out, err = run(t, url, dir, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out, "alice (advertiser)") {
		t.Fatalf("expected identity, got:\n%s", out)
	}

	out, err = run(t, url, dir, "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !strings.Contains(out, "→ Login") {
		t.Fatalf("expected navigation to Login, got:\n%s", out)
	}

	out, err = run(t, url, dir, "whoami")
	if err != nil {
		t.Fatalf("whoami after logout: %v", err)
	}
	if !strings.Contains(out, "Not logged in") {
		t.Fatalf("expected logged-out state, got:\n%s", out)
	}
}

func TestGuardBlocksWrongRole(t *testing.T) {
	url, srv := startTestServer(t)
	dir := t.TempDir()

	if _, err := srv.Auth.Register("bob", "secret123", domain.RolePublisher, "bob@example.com", "5550002222"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if out, err := run(t, url, dir, "login", "-u", "bob", "-p", "secret123"); err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}

	// A publisher must not reach advertiser commands.
	if _, err := run(t, url, dir, "ads", "list"); err == nil {
		t.Fatalf("expected guard to block ads list for publisher")
	}

	// Logging in again while a session is live is anonymous-only.
	if _, err := run(t, url, dir, "login", "-u", "bob", "-p", "secret123"); err == nil {
		t.Fatalf("expected guard to block second login")
	}
}

func TestRegisterThenLoginAsPublisher(t *testing.T) {
	url, _ := startTestServer(t)
	dir := t.TempDir()

	out, err := run(t, url, dir, "register",
		"-u", "carol", "-p", "secret123",
		"--email", "carol@example.com", "--phone", "5550003333", "--role", "publisher")
	if err != nil {
		t.Fatalf("register: %v\n%s", err, out)
	}

	out, err = run(t, url, dir, "login", "-u", "carol", "-p", "secret123")
	if err != nil {
		t.Fatalf("login: %v\n%s", err, out)
	}
	if !strings.Contains(out, "→ Publisher") {
		t.Fatalf("expected navigation to Publisher, got:\n%s", out)
	}

	out, err = run(t, url, dir, "sites", "add", "--name", "Tech Blog", "--domain", "blog.example.com")
	if err != nil {
		t.Fatalf("sites add: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Verification token:") {
		t.Fatalf("expected verification token, got:\n%s", out)
	}
}

func TestMaskCard(t *testing.T) {
	if got := maskCard("4111111111111111"); got != "****1111" {
		t.Fatalf("maskCard: got %q", got)
	}
	if got := maskCard("123"); got != "123" {
		t.Fatalf("maskCard short: got %q", got)
	}
}
