package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAdNotFound         = errors.New("ad not found")
	ErrWebsiteNotFound    = errors.New("website not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrAlreadyVerified    = errors.New("website already verified")
)
