package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	// ErrOrderNotFound is a normal lookup outcome, not a failure: every
	// endpoint pattern and the fallback scan came up empty.
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
