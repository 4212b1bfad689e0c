package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenExpired = errors.New("review token expired")
	ErrTokenRevoked = errors.New("review token revoked")
)
