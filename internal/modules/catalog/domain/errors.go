package domain

import "errors"

var (
	ErrSongNotFound   = errors.New("song not found")
	ErrAlbumNotFound  = errors.New("album not found")
	ErrNotAnArtist    = errors.New("caller has no artist profile")
	ErrNotOwner       = errors.New("caller does not own this resource")
	ErrInvalidSortKey = errors.New("invalid sort key")
	ErrBadReference   = errors.New("referenced resource does not exist")
	ErrValidation     = errors.New("validation failed")
)
