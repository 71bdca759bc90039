// Package signer provides timestamped, domain-separated signing of cookie
// payloads using a BLAKE2b-256 keyed MAC.
//
// Two modes share a single token format:
//
//	base64url(signature).base64url(timestamp).payload
//
// Signer (raw mode) signs an opaque string as-is. Serializer (structured
// mode) marshals an arbitrary JSON-compatible value to compact JSON and
// base64url-encodes it before signing. Verification checks the MAC first,
// then the embedded timestamp against the configured max age; a token aged
// exactly the max age is still valid.
//
// The MAC key is derived from the secret and a personalization tag, so
// tokens signed for one cookie cannot be replayed against another cookie
// that shares the same secret.
//
// # Usage
//
//	s, err := signer.New("my-very-strong-secret",
//	    signer.WithPersonalization("my_cookie"),
//	    signer.WithMaxAge(5*time.Minute),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, _ := s.Sign("hello")
//	value, err := s.Unsign(token)
//
// Verification failures are reported as ErrInvalidSignature,
// ErrExpiredSignature, or ErrMalformedToken; structured decoding adds
// ErrDeserialization. All operations are pure computation and safe for
// concurrent use.
package signer
