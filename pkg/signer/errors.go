package signer

import "errors"

var (
	// ErrMissingSecret is returned when a signer is created without a secret.
	ErrMissingSecret = errors.New("signer: missing secret")

	// ErrSecretInOptions is returned when a secret or key is smuggled into the
	// opaque option map. The secret must only ever enter through the constructor.
	ErrSecretInOptions = errors.New("signer: secret must not be passed via signer options")

	// ErrInvalidSignature is returned when the token's MAC does not match.
	ErrInvalidSignature = errors.New("signer: invalid signature")

	// ErrExpiredSignature is returned when the token is older than the max age.
	ErrExpiredSignature = errors.New("signer: signature expired")

	// ErrMalformedToken is returned when the input is structurally not a signed token.
	ErrMalformedToken = errors.New("signer: malformed token")

	// ErrDeserialization is returned when an authenticated payload cannot be
	// decoded into the destination value.
	ErrDeserialization = errors.New("signer: payload deserialization failed")
)
