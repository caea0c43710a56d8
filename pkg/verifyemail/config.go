package verifyemail

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment.
// SigningSecret is required; a missing secret stops startup.
type Config struct {
	SigningSecret   string `env:"VERIFY_EMAIL_SIGNING_SECRET,required,notEmpty"`
	LifetimeSeconds int    `env:"VERIFY_EMAIL_LIFETIME_SECONDS" envDefault:"3600"`
	Algorithm       string `env:"VERIFY_EMAIL_ALGORITHM" envDefault:"hmac-sha256"`
}

// LogValue keeps the secret out of log output.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("signing_secret_set", c.SigningSecret != ""),
		slog.Int("lifetime_seconds", c.LifetimeSeconds),
		slog.String("algorithm", c.Algorithm),
	)
}

// LoadConfig loads the given .env files, or the default .env if none are
// given and it exists, then parses Config from the environment.
// Variables already set in the environment take precedence over files.
func LoadConfig(files ...string) (Config, error) {
	if len(files) > 0 {
		if err := godotenv.Load(files...); err != nil {
			return Config{}, errors.Join(ErrParsingConfig, err)
		}
	} else {
		// The default .env file is optional.
		_ = godotenv.Load()
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
