package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrValidation       = errors.New("validation failed")
	ErrIndexRequired    = errors.New("composite index required")

	ErrInvalidCredential = errors.New("invalid credential")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrAuthUnknown       = errors.New("authentication failed")
)
