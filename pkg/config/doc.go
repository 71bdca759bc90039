// Package config loads application configuration from the environment into
// tagged structs, with optional .env file support.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read once per process (missing files are fine), then
// the environment is parsed into any struct carrying `env` tags.
//
//	type Config struct {
//	    Secret string        `env:"SIGNEDCOOKIE_SECRET,required"`
//	    TTL    time.Duration `env:"SIGNEDCOOKIE_TTL" envDefault:"5m"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
