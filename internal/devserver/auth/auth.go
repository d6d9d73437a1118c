// Package auth implements the devserver's account registration and
// token issuance.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adspace/adspace-cli/internal/core/domain"
	"github.com/adspace/adspace-cli/internal/devserver/store"
)

// Service implements registration and login for the devserver.
type Service struct {
	store     *store.Store
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(st *store.Store, jwtSecret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{store: st, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account with a bcrypt-hashed password.
func (s *Service) Register(username, password string, role domain.Role, email, phone string) (domain.User, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	return s.store.CreateUser(username, string(hash), role, email, phone)
}

// Login verifies credentials and returns a signed token plus the account.
func (s *Service) Login(username, password string) (string, domain.User, error) {
	if username == "" || password == "" {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	rec, err := s.store.FindUser(username)
	if err != nil {
		return "", domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return "", domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(rec)
	if err != nil {
		return "", domain.User{}, err
	}
	return token, rec.User, nil
}

func (s *Service) generateToken(rec *store.UserRecord) (string, error) {
	claims := jwt.MapClaims{
		"username": rec.Username,
		"role":     string(rec.UserRole),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
