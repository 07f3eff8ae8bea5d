package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the server rejects the auth token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrAccountNotFound is returned when the account behind the token does
	// not exist on the server (e.g. after a remote account deletion).
	ErrAccountNotFound = errors.New("account not found")
)
