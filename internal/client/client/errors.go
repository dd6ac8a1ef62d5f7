package client

import "errors"

var (
	ErrMissingAPIKey = errors.New("generation provider API key is not configured")
	ErrEmptyResponse = errors.New("no response from generation provider")
)
