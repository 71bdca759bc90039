package signedcookie

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/signedcookie/pkg/cookie"
	"github.com/dmitrymomot/signedcookie/pkg/signer"
)

// Config holds middleware configuration loadable from the environment.
// The secret is required and is never echoed anywhere.
type Config struct {
	Secret     string        `env:"SIGNEDCOOKIE_SECRET,required"`
	CookieName string        `env:"SIGNEDCOOKIE_NAME" envDefault:"signed_data"`
	StateName  string        `env:"SIGNEDCOOKIE_STATE_NAME" envDefault:"signed_cookie"`
	TTL        time.Duration `env:"SIGNEDCOOKIE_TTL" envDefault:"5m"`

	// DeleteInvalid drops client cookies that failed verification.
	DeleteInvalid bool `env:"SIGNEDCOOKIE_DELETE_INVALID" envDefault:"false"`

	// Cookie carries the attribute defaults for the written cookie.
	Cookie cookie.Config
}

// DefaultConfig returns the default middleware configuration, without a
// secret; callers must fill that in themselves.
func DefaultConfig() Config {
	return Config{
		CookieName: "signed_data",
		StateName:  "signed_cookie",
		TTL:        5 * time.Minute,
		Cookie:     cookie.DefaultConfig(),
	}
}

// NewSimpleFromConfig builds a Simple-codec middleware from the config.
// Signer options (e.g. signer.WithOptionMap) are passed through to the codec.
func NewSimpleFromConfig(cfg Config, opts ...signer.Option) (func(next http.Handler) http.Handler, error) {
	codec, err := NewSimple(cfg.Secret, cfg.CookieName, cfg.TTL, opts...)
	if err != nil {
		return nil, err
	}
	return middlewareFromConfig[string](cfg, codec)
}

// NewSerializedFromConfig builds a Serialized-codec middleware from the
// config for an arbitrary JSON-compatible payload type.
func NewSerializedFromConfig[T any](cfg Config, opts ...signer.Option) (func(next http.Handler) http.Handler, error) {
	codec, err := NewSerialized[T](cfg.Secret, cfg.CookieName, cfg.TTL, opts...)
	if err != nil {
		return nil, err
	}
	return middlewareFromConfig[T](cfg, codec)
}

func middlewareFromConfig[T any](cfg Config, codec Codec[T]) (func(next http.Handler) http.Handler, error) {
	return MiddlewareWithConfig(MiddlewareConfig[T]{
		Codec:         codec,
		CookieName:    cfg.CookieName,
		StateName:     cfg.StateName,
		TTL:           cfg.TTL,
		Cookies:       cookie.NewFromConfig(cfg.Cookie),
		DeleteInvalid: cfg.DeleteInvalid,
	})
}
