package protocol

import "errors"

var (
	ErrEmptySource     = errors.New("protocol: empty source")
	ErrMalformedSource = errors.New("protocol: malformed source")
	ErrFetchStatus     = errors.New("protocol: unexpected fetch status")
)
