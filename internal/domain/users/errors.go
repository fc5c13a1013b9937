package users

import "errors"

var (
	// ErrUserNotFound is returned when no user matches the given ID or username.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken is returned when the requested username already exists.
	ErrUsernameTaken = errors.New("username already registered")
	// ErrEmailTaken is returned when the requested email already exists.
	ErrEmailTaken = errors.New("email already registered")
)
