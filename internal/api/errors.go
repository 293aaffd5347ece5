package api

import "errors"

var (
	ErrInvalidBody   = errors.New("invalid request body")
	ErrNilMatcher    = errors.New("default matcher is required")
	ErrNilTranslator = errors.New("translator is required")
)
