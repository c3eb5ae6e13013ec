package user

import "errors"

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a session is not found or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmailRequired is returned when the email is missing
	ErrEmailRequired = errors.New("email is required")

	// ErrUserIDRequired is returned when the user ID is missing
	ErrUserIDRequired = errors.New("user ID is required")

	// ErrInvalidRole is returned when an unknown role is provided
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials is returned on a failed password login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive is returned when a deactivated user attempts to log in
	ErrUserInactive = errors.New("user is inactive")

	// ErrMappingNotFound is returned when a visibility mapping is not found
	ErrMappingNotFound = errors.New("mapping not found")
)
