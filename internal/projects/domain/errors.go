package domain

import "errors"

var (
	ErrNotFound          = errors.New("project not found")
	ErrFileNotFound      = errors.New("build file not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidTransition = errors.New("invalid phase transition")
)
