package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrArtistNotFound   = errors.New("artist profile not found")
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrNotOwner         = errors.New("caller does not own this playlist")
)
