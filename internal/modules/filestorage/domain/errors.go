package domain

import "errors"

var (
	ErrFileTooLarge       = errors.New("file exceeds the size limit")
	ErrInvalidContentType = errors.New("file type not allowed")
)
