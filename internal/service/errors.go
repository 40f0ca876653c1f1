package service

import "errors"

var (
	// ErrNotFound covers both nonexistent records and records owned by a
	// different user, deliberately indistinguishable.
	ErrNotFound = errors.New("not found")

	ErrUsernameTaken       = errors.New("username already exists")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrTitleRequired       = errors.New("title is required")
	ErrNameRequired        = errors.New("name is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidPriority     = errors.New("invalid priority")

	// ErrCategoryOwnership is returned when a task is assigned a category
	// that does not belong to the same user.
	ErrCategoryOwnership = errors.New("category does not belong to user")
)
