package model

import (
	"errors"
)

var (
	// ErrTokenUnavailable means the durable token slot has never been
	// populated. Callers should treat this as a retryable precondition
	// failure, not a permanent error.
	ErrTokenUnavailable = errors.New("no token has been cached")

	// ErrAuthRejected means the identity provider rejected the client
	// credentials or the requested scope. Fatal for that refresh cycle;
	// the previously issued token stays valid until it expires.
	ErrAuthRejected = errors.New("identity provider rejected the token request")

	// ErrUpstreamCall means a downstream partner call failed (transport
	// error or non-2xx). Ingestion reports it to the caller without
	// retrying; retry policy lives in the relay, not here.
	ErrUpstreamCall = errors.New("upstream call failed")
)
