package services

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong
	// password. Callers cannot tell which.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotOwner is returned when an actor tries to mutate a resource
	// they did not create.
	ErrNotOwner = errors.New("not the owner of this resource")

	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyContent  = errors.New("content is required")
)

// IsValidation reports whether err is one of the blank-field errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyUsername) ||
		errors.Is(err, ErrEmptyPassword) ||
		errors.Is(err, ErrEmptyTitle) ||
		errors.Is(err, ErrEmptyContent)
}
