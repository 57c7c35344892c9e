package models

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown username, inactive
	// account and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned when no valid session is present.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden is returned on insufficient role or a protected-invariant
	// violation such as deleting a superadmin.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a newsletter email is already subscribed.
	ErrDuplicateEmail = errors.New("email already subscribed")
	// ErrDuplicateUser is returned when an admin username or email is taken.
	ErrDuplicateUser = errors.New("username or email already in use")
)
