package domain

import "errors"

// Domain errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrInvalidFile    = errors.New("invalid file")
)
