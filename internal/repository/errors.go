package repository

import "errors"

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when an insert hits the unique
	// constraint on users.email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidPassword is returned when the password does not match
	// the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
)
