package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrIncorrectPassword   = errors.New("incorrect password")
	ErrHashingFailure      = errors.New("password hashing failed")
)
