// Package store is the devserver's in-memory data layer. It exists so the
// client toolkit can be exercised end to end without external services;
// everything lives behind one mutex and vanishes on restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adspace/adspace-cli/internal/core/domain"
)

// UserRecord is a stored account. PasswordHash never leaves the store.
type UserRecord struct {
	domain.User
	PasswordHash string
	CompanyName  string
}

type adRecord struct {
	domain.Ad
	Owner string // username of the owning advertiser
	daily map[string]*domain.DailyStat
}

type siteRecord struct {
	domain.Website
	Owner string
}

// Store holds all devserver state.
type Store struct {
	mu         sync.Mutex
	users      map[string]*UserRecord // by username
	ads        map[string]*adRecord   // by ad ID
	sites      map[string]*siteRecord // by website ID
	categories []domain.AdCategory
	payments   map[string][]domain.PaymentMethod // by owner username
}

func New() *Store {
	return &Store{
		users:    make(map[string]*UserRecord),
		ads:      make(map[string]*adRecord),
		sites:    make(map[string]*siteRecord),
		payments: make(map[string][]domain.PaymentMethod),
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func newID() string {
	return uuid.NewString()
}

// CreateUser registers an account. The password arrives already hashed.
func (s *Store) CreateUser(username, passwordHash string, role domain.Role, email, phone string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return domain.User{}, domain.ErrUserExists
	}
	rec := &UserRecord{
		User: domain.User{
			UserID:     newID(),
			Username:   username,
			UserRole:   role,
			Email:      email,
			Phone:      phone,
			CreateTime: now(),
		},
		PasswordHash: passwordHash,
	}
	s.users[username] = rec
	return rec.User, nil
}

// FindUser returns the stored record for username.
func (s *Store) FindUser(username string) (*UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *rec
	return &clone, nil
}

// ListUsers returns all accounts, filtered by role when role is non-empty.
func (s *Store) ListUsers(role domain.Role) []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, 0, len(s.users))
	for _, rec := range s.users {
		if role != "" && rec.UserRole != role {
			continue
		}
		out = append(out, rec.User)
	}
	return out
}

// SetCompanyName records the advertiser's company name.
func (s *Store) SetCompanyName(username, company string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return domain.ErrUserNotFound
	}
	rec.CompanyName = company
	return nil
}

// Profile builds the advertiser-facing profile view.
func (s *Store) Profile(username string) (domain.AdvertiserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[username]
	if !ok {
		return domain.AdvertiserProfile{}, domain.ErrUserNotFound
	}
	return domain.AdvertiserProfile{
		AdvertiserID: rec.UserID,
		UserID:       rec.UserID,
		CompanyName:  rec.CompanyName,
		Email:        rec.Email,
		Phone:        rec.Phone,
	}, nil
}

// CreateCategory adds a marketplace-wide ad category.
func (s *Store) CreateCategory(name string) domain.AdCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := domain.AdCategory{
		CategoryID:   newID(),
		CategoryName: name,
		CreateTime:   now(),
	}
	s.categories = append(s.categories, cat)
	return cat
}

// ListCategories returns all categories in creation order.
func (s *Store) ListCategories() []domain.AdCategory {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.AdCategory, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddPaymentMethod stores a card for an advertiser.
func (s *Store) AddPaymentMethod(username, bankName, cardNumber string) domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	pm := domain.PaymentMethod{
		PaymentID:  newID(),
		BankName:   bankName,
		CardNumber: cardNumber,
	}
	s.payments[username] = append(s.payments[username], pm)
	return pm
}

// PaymentMethods lists an advertiser's cards.
func (s *Store) PaymentMethods(username string) []domain.PaymentMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.PaymentMethod, len(s.payments[username]))
	copy(out, s.payments[username])
	return out
}
