package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist or is inactive.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidUserID indicates that the provided user ID is invalid (e.g., empty).
	ErrInvalidUserID = errors.New("invalid user ID")
	// ErrInvalidAccessKey indicates that the provided access key is invalid (e.g., empty).
	ErrInvalidAccessKey = errors.New("invalid access key")
	// ErrDuplicateAccessKey indicates that another user already holds the access key.
	ErrDuplicateAccessKey = errors.New("access key already in use")
	// ErrInvalidIsActive indicates that the is_active field is missing.
	ErrInvalidIsActive = errors.New("is_active field is required")
)
