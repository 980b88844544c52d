package api

import "errors"

var (
	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrEmptyResponse  = errors.New("empty response body")
)
