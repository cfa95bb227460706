package domain

import "errors"

var (
	ErrEmptyQuestion           = errors.New("question is required")
	ErrCompletionUnavailable   = errors.New("completion service unavailable")
	ErrMalformedPageCollection = errors.New("page collection is not a JSON array")
)
