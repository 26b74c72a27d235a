package domain

import "errors"

var (
	ErrAlreadyLiked   = errors.New("song already liked")
	ErrLikeNotFound   = errors.New("like not found")
	ErrSongNotFound   = errors.New("song not found")
	ErrArtistNotFound = errors.New("artist not found")
)
