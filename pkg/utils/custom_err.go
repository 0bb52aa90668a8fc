package utils

import "errors"

var (
	ErrTrailNotFound   = errors.New("trail not found")
	ErrResultNotFound  = errors.New("recommendation result not found")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidLimit    = errors.New("invalid recommendation count")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")
	ErrCacheError      = errors.New("cache error")
)
