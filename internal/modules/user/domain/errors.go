package domain

import "errors"

var (
	ErrWrongPassword = errors.New("current password is incorrect")
	ErrValidation    = errors.New("validation failed")
)
