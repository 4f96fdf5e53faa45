package recorded

import "errors"

var (
	ErrEmptyTitle     = errors.New("empty title")
	ErrInvalidPattern = errors.New("invalid title pattern")
)
