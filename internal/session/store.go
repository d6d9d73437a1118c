package session

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/adspace/adspace-cli/internal/api"
	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/metrics"
)

// Storage keys. Token and identity are deliberately independent entries;
// reconciling a mismatch between them is the caller's concern.
const (
	tokenKey    = "auth_token"
	identityKey = "user_info"
)

const loginRoute = "Login"

// Identity is the persisted record of who is logged in.
type Identity struct {
	Username string      `json:"username"`
	UserRole domain.Role `json:"userRole"`
}

// Navigator receives the post-login / post-logout destination. The CLI
// implements it; tests record the calls.
type Navigator interface {
	NavigateTo(route string)
}

// Authenticator is the slice of the auth API the store needs for login.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResult, error)
}

// ValidationError reports a successful login response that is missing a
// required field (token, username or role).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Store is the single process-wide session. It is created at application
// start and torn down never; state persists until explicit logout or a 401
// teardown.
type Store struct {
	storage Storage
	nav     Navigator
	auth    Authenticator
	log     zerolog.Logger
}

func NewStore(storage Storage, nav Navigator, log zerolog.Logger) *Store {
	return &Store{storage: storage, nav: nav, log: log}
}

// Bind attaches the authenticator used by Login. Bound after construction
// because the API client needs the store first (for bearer injection).
func (s *Store) Bind(auth Authenticator) {
	s.auth = auth
}

// Login authenticates against the backend and commits the session. A
// response missing token, username or role fails validation and leaves
// the stored state untouched. On success navigation moves to the role's
// home route.
func (s *Store) Login(ctx context.Context, creds api.LoginRequest) error {
	result, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	if result.Token == "" || result.Username == "" || result.UserRole == "" {
		return &ValidationError{Message: "invalid login response: missing token, username or role"}
	}

	identity, err := json.Marshal(Identity{Username: result.Username, UserRole: result.UserRole})
	if err != nil {
		return err
	}
	if err := s.storage.Set(tokenKey, result.Token); err != nil {
		return err
	}
	if err := s.storage.Set(identityKey, string(identity)); err != nil {
		return err
	}

	metrics.SessionLoginsTotal.WithLabelValues(string(result.UserRole)).Inc()
	s.log.Info().Str("username", result.Username).Str("role", string(result.UserRole)).Msg("logged in")

	s.nav.NavigateTo(domain.Capitalize(string(result.UserRole)))
	return nil
}

// Logout clears the session unconditionally and navigates to the login
// route. Calling it while logged out is a no-op beyond the navigation.
func (s *Store) Logout() {
	s.Clear()
	s.nav.NavigateTo(loginRoute)
}

// Clear removes both persisted keys. The API client calls this on 401 so
// stale authenticated state cannot outlive a rejected token.
func (s *Store) Clear() {
	if err := s.storage.Delete(tokenKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear token")
	}
	if err := s.storage.Delete(identityKey); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear identity")
	}
}

// Token returns the persisted token, or "" when logged out.
func (s *Store) Token() string {
	token, ok, err := s.storage.Get(tokenKey)
	if err != nil || !ok {
		return ""
	}
	return token
}

// Username returns the logged-in username. The boolean is false when no
// identity is stored or it cannot be decoded.
func (s *Store) Username() (string, bool) {
	id, ok := s.identity()
	if !ok {
		return "", false
	}
	return id.Username, true
}

// Role returns the logged-in role, false when logged out.
func (s *Store) Role() (domain.Role, bool) {
	id, ok := s.identity()
	if !ok {
		return "", false
	}
	return id.UserRole, true
}

func (s *Store) identity() (Identity, bool) {
	raw, ok, err := s.storage.Get(identityKey)
	if err != nil || !ok {
		return Identity{}, false
	}
	var id Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		s.log.Warn().Err(err).Msg("corrupt identity blob")
		return Identity{}, false
	}
	return id, true
}
