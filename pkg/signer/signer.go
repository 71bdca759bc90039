package signer

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Signer signs and verifies opaque string values using a BLAKE2b-256 keyed
// MAC with an embedded timestamp.
//
// Token format: base64url(signature).base64url(timestamp).payload
//
// The MAC key is derived from the secret and the personalization tag, so
// tokens issued for one purpose cannot be replayed as valid tokens for
// another even when the secret is shared. A Signer is immutable and safe for
// concurrent use.
type Signer struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// New creates a raw-mode signer. The secret is required and is never echoed
// in errors or logs.
func New(secret string, opts ...Option) (*Signer, error) {
	cfg, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return nil, ErrMissingSecret
	}

	return &Signer{
		key:    deriveKey(secret, cfg.personalization),
		maxAge: cfg.maxAge,
		now:    cfg.now,
	}, nil
}

// Sign returns a signed token carrying the value and the current timestamp.
func (s *Signer) Sign(value string) (string, error) {
	ts := encodeTimestamp(s.now())
	sig := s.mac(ts + "." + value)
	return base64.RawURLEncoding.EncodeToString(sig) + "." + ts + "." + value, nil
}

// Unsign verifies the token and returns the embedded value.
//
// It fails with ErrMalformedToken when the input is not a three-part token,
// ErrInvalidSignature when the MAC does not match, and ErrExpiredSignature
// when the token is older than the configured max age. A token aged exactly
// the max age is still accepted.
func (s *Signer) Unsign(token string) (string, error) {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
		return "", ErrMalformedToken
	}
	sigEnc, tsEnc, payload := parts[0], parts[1], parts[2]

	sig, err := base64.RawURLEncoding.DecodeString(sigEnc)
	if err != nil {
		return "", ErrInvalidSignature
	}

	expected := s.mac(tsEnc + "." + payload)
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return "", ErrInvalidSignature
	}

	// Timestamp is only inspected after authentication.
	ts, err := decodeTimestamp(tsEnc)
	if err != nil {
		return "", ErrMalformedToken
	}

	if s.maxAge > 0 && s.now().Sub(ts) > s.maxAge {
		return "", ErrExpiredSignature
	}

	return payload, nil
}

// MaxAge returns the configured maximum token age.
func (s *Signer) MaxAge() time.Duration {
	return s.maxAge
}

func (s *Signer) mac(data string) []byte {
	h, _ := blake2b.New256(s.key)
	h.Write([]byte(data))
	return h.Sum(nil)
}

// deriveKey binds the MAC key to both the secret and the domain separation
// tag. The zero byte separates the two inputs unambiguously.
func deriveKey(secret, personalization string) []byte {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(secret))
	h.Write([]byte{0x00})
	h.Write([]byte(personalization))
	return h.Sum(nil)
}

func encodeTimestamp(t time.Time) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(t.Unix()))
	return base64.RawURLEncoding.EncodeToString(buf[:])
}

func decodeTimestamp(enc string) (time.Time, error) {
	raw, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return time.Time{}, err
	}
	if len(raw) != 8 {
		return time.Time{}, ErrMalformedToken
	}
	return time.Unix(int64(binary.BigEndian.Uint64(raw)), 0), nil
}
