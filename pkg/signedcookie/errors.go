package signedcookie

import "errors"

var (
	// ErrMissingCodec is returned when a middleware is built without a codec.
	ErrMissingCodec = errors.New("signedcookie: missing codec")

	// ErrMissingCookieName is returned when the cookie name is blank.
	ErrMissingCookieName = errors.New("signedcookie: missing cookie name")

	// ErrMissingStateName is returned when the state attribute name is blank.
	ErrMissingStateName = errors.New("signedcookie: missing state name")

	// ErrInvalidTTL is returned when the cookie TTL is zero or negative.
	ErrInvalidTTL = errors.New("signedcookie: ttl must be positive")
)
