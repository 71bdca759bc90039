package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// LoadEnv loads one or more .env files into the process environment.
// Existing environment variables always win over file values.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// Load populates the configuration struct from the environment, reading the
// default .env file (if any) exactly once per process first.
//
// Example:
//
//	type AppConfig struct {
//	    Secret string `env:"SIGNEDCOOKIE_SECRET,required"`
//	    TTL    time.Duration `env:"SIGNEDCOOKIE_TTL" envDefault:"5m"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional; a missing one is not an error.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics on failure. Use for configuration the
// application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
