package domain

import "errors"

var ErrSongNotFound = errors.New("song not found")
