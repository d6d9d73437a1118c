package domain

import "strings"

// Role is the closed set of marketplace actors.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAdvertiser Role = "advertiser"
	RolePublisher  Role = "publisher"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAdvertiser, RolePublisher:
		return true
	}
	return false
}

// Capitalize upper-cases the first rune and lower-cases the rest. Route
// names are derived from roles this way ("advertiser" → "Advertiser").
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// User models an account as exposed by the backend.
type User struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	UserRole   Role   `json:"userRole"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	CreateTime string `json:"createTime"`
}

// AdvertiserProfile is the advertiser-facing view of the own account.
type AdvertiserProfile struct {
	AdvertiserID string `json:"advertiserId"`
	UserID       string `json:"userId"`
	CompanyName  string `json:"companyName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}
