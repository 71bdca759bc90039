package signedcookie

import (
	"time"

	"github.com/dmitrymomot/signedcookie/pkg/signer"
)

// Codec translates between the application-level value and the signed wire
// cookie string. Decode failures carry the pkg/signer taxonomy unchanged.
type Codec[T any] interface {
	Encode(value T) (string, error)
	Decode(raw string) (T, error)
}

// Simple is a Codec[string] that signs the value as-is, with no
// serialization beyond the signature itself.
type Simple struct {
	s *signer.Signer
}

// NewSimple creates a string codec for the named cookie. The signer is
// personalized with the codec identity and the cookie name, so tokens are
// only valid for this exact cookie.
func NewSimple(secret, cookieName string, ttl time.Duration, opts ...signer.Option) (*Simple, error) {
	s, err := signer.New(secret, codecOptions("Simple", cookieName, ttl, opts)...)
	if err != nil {
		return nil, err
	}
	return &Simple{s: s}, nil
}

func (c *Simple) Encode(value string) (string, error) {
	return c.s.Sign(value)
}

func (c *Simple) Decode(raw string) (string, error) {
	return c.s.Unsign(raw)
}

// Serialized is a Codec[T] for structured payloads: T is serialized to a
// canonical JSON form and signed, and the reverse on decode. The cookie TTL
// doubles as the signature max age unless the signer option map overrides it.
type Serialized[T any] struct {
	s *signer.Serializer
}

// NewSerialized creates a structured codec for the named cookie.
func NewSerialized[T any](secret, cookieName string, ttl time.Duration, opts ...signer.Option) (*Serialized[T], error) {
	s, err := signer.NewSerializer(secret, codecOptions("Serialized", cookieName, ttl, opts)...)
	if err != nil {
		return nil, err
	}
	return &Serialized[T]{s: s}, nil
}

func (c *Serialized[T]) Encode(value T) (string, error) {
	return c.s.Encode(value)
}

func (c *Serialized[T]) Decode(raw string) (T, error) {
	var value T
	if err := c.s.Decode(raw, &value); err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// codecOptions places the derived personalization and TTL after the caller
// options so they cannot be accidentally replaced; caller-supplied
// personalization and max-age overrides still apply through the option map.
func codecOptions(kind, cookieName string, ttl time.Duration, opts []signer.Option) []signer.Option {
	out := make([]signer.Option, 0, len(opts)+2)
	out = append(out, opts...)
	out = append(out,
		signer.WithPersonalization("signedcookie."+kind+cookieName),
		signer.WithMaxAge(ttl),
	)
	return out
}
