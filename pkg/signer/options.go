package signer

import (
	"strings"
	"time"
)

// Reserved option map keys. Values under these keys are recognized by the
// signer itself; anything else in the map is ignored as opaque pass-through.
const (
	optPersonalisation = "personalisation"
	optMaxAge          = "max_age"
)

type settings struct {
	personalization string
	maxAge          time.Duration
	now             func() time.Time
	optionMap       map[string]any
}

// Option configures a signer.
type Option func(*settings)

// WithPersonalization sets the domain separation tag mixed into the MAC key.
// Two signers sharing a secret but carrying different tags produce mutually
// invalid tokens.
func WithPersonalization(tag string) Option {
	return func(s *settings) {
		s.personalization = tag
	}
}

// WithMaxAge sets the maximum accepted token age. Zero disables expiration.
func WithMaxAge(d time.Duration) Option {
	return func(s *settings) {
		s.maxAge = d
	}
}

// WithClock overrides the time source, which is useful for expiry tests.
func WithClock(now func() time.Time) Option {
	return func(s *settings) {
		if now != nil {
			s.now = now
		}
	}
}

// WithOptionMap attaches an opaque option map. A "personalisation" entry is
// appended to the domain separation tag and a "max_age" entry overrides the
// configured max age; other entries are ignored. A "secret" or "key" entry is
// a configuration error reported by the constructor.
func WithOptionMap(m map[string]any) Option {
	return func(s *settings) {
		s.optionMap = m
	}
}

func newSettings(opts []Option) (settings, error) {
	s := settings{now: time.Now}
	for _, opt := range opts {
		opt(&s)
	}

	for key, val := range s.optionMap {
		switch strings.ToLower(key) {
		case "secret", "key":
			return settings{}, ErrSecretInOptions
		case optPersonalisation:
			if tag, ok := val.(string); ok {
				s.personalization += tag
			}
		case optMaxAge:
			if d, ok := asDuration(val); ok {
				s.maxAge = d
			}
		}
	}

	return s, nil
}

// asDuration accepts a Duration or a number of seconds.
func asDuration(v any) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case int:
		return time.Duration(d) * time.Second, true
	case int64:
		return time.Duration(d) * time.Second, true
	case float64:
		return time.Duration(d * float64(time.Second)), true
	default:
		return 0, false
	}
}
