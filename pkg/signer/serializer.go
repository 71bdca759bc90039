package signer

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// Serializer signs and verifies structured values. The value is marshaled to
// compact JSON, base64url-encoded, and signed with the same token format as
// Signer, so both modes share one wire contract.
//
// A Serializer always enforces its configured max age; callers can override
// it per instance through a "max_age" entry in the option map.
type Serializer struct {
	signer *Signer
}

// NewSerializer creates a structured-mode signer.
func NewSerializer(secret string, opts ...Option) (*Serializer, error) {
	s, err := New(secret, opts...)
	if err != nil {
		return nil, err
	}
	return &Serializer{signer: s}, nil
}

// Encode serializes the value and returns a signed token. A value that cannot
// be marshaled (cyclic structures, channels) is a programming error and is
// reported as a plain marshal error, not as part of the verification taxonomy.
func (s *Serializer) Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("signer: marshal payload: %w", err)
	}

	return s.signer.Sign(base64.RawURLEncoding.EncodeToString(data))
}

// Decode verifies the token and unmarshals the authenticated payload into dst.
//
// It shares the Unsign failure taxonomy and additionally fails with
// ErrDeserialization when the authenticated payload does not parse into dst.
func (s *Serializer) Decode(token string, dst any) error {
	payload, err := s.signer.Unsign(token)
	if err != nil {
		return err
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("%w: invalid payload encoding", ErrDeserialization)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrDeserialization, err)
	}

	return nil
}

// MaxAge returns the configured maximum token age.
func (s *Serializer) MaxAge() time.Duration {
	return s.signer.MaxAge()
}
