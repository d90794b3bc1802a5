package services

import "errors"

// Error variables
var (
	ErrValidation         = errors.New("validation failed")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid id or password")
	ErrUserConflict       = errors.New("user id already exists")
	ErrUnknownUser        = errors.New("referenced user does not exist")
)
