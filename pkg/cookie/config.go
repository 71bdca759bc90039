package cookie

import "net/http"

// Config holds cookie attribute configuration loadable from the environment.
type Config struct {
	Path     string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain   string        `env:"COOKIE_DOMAIN" envDefault:""`
	Secure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly bool          `env:"COOKIE_HTTP_ONLY" envDefault:"false"`
	SameSite http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // 2 = SameSiteLaxMode
}

// DefaultConfig returns the default cookie attribute configuration.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	}
}

// NewFromConfig creates a Manager from the provided Config. Additional
// options are applied on top of the config values.
func NewFromConfig(cfg Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 4+len(opts))

	if cfg.Path != "" {
		configOpts = append(configOpts, WithPath(cfg.Path))
	}
	if cfg.Domain != "" {
		configOpts = append(configOpts, WithDomain(cfg.Domain))
	}
	if cfg.Secure {
		configOpts = append(configOpts, WithSecure(true))
	}
	if cfg.HttpOnly {
		configOpts = append(configOpts, WithHTTPOnly(true))
	}
	if cfg.SameSite != 0 {
		configOpts = append(configOpts, WithSameSite(cfg.SameSite))
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
