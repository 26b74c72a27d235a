package domain

import "errors"

var (
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrSongAlreadyAdded  = errors.New("song already in playlist")
	ErrSongNotInPlaylist = errors.New("song not in playlist")
	ErrNotOwner          = errors.New("caller does not own this playlist")
	ErrBadReference      = errors.New("referenced song does not exist")
	ErrValidation        = errors.New("validation failed")
)
