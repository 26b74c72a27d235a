package domain

import "errors"

var (
	ErrArtistNotFound = errors.New("artist profile not found")
	ErrValidation     = errors.New("validation failed")
)
