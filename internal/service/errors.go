package service

import "errors"

var (
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password so that login failures are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyLiked is returned when a user likes a post twice.
	ErrAlreadyLiked = errors.New("post already liked")

	// ErrNotLiked is returned when a user unlikes a post they never liked.
	ErrNotLiked = errors.New("post has not yet been liked")

	// ErrNotAuthor is returned when a caller mutates a resource they
	// do not own.
	ErrNotAuthor = errors.New("not the author")
)
