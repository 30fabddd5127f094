package config

import (
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"fflogs_events/fflogs"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	APIKey     string
	BaseURL    string
	TimeZone   string
	PageDelay  time.Duration
	OrphanPets string
	Proxy      string
	SentryDSN  string
}

// Load reads .env (if present) and the environment. Invalid durations fall back to the default.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		APIKey:     os.Getenv("FFLOGS_API_KEY"),
		BaseURL:    envOr("FFLOGS_BASE_URL", fflogs.DefaultBaseURL),
		TimeZone:   envOr("FFLOGS_TIMEZONE", fflogs.DefaultTimeZone),
		PageDelay:  envDurationOr("FFLOGS_PAGE_DELAY", time.Second),
		OrphanPets: envOr("FFLOGS_ORPHAN_PETS", "fail"),
		Proxy:      os.Getenv("FFLOGS_PROXY"),
		SentryDSN:  os.Getenv("SENTRY_DSN"),
	}
}

func (c Config) Validate() error {
	switch {
	case c.APIKey == "":
		return errors.New("FFLOGS_API_KEY cannot be empty")
	case c.BaseURL == "":
		return errors.New("FFLOGS_BASE_URL cannot be empty")
	case c.PageDelay < 0:
		return errors.Errorf("FFLOGS_PAGE_DELAY cannot be negative: %s", c.PageDelay)
	case c.OrphanPets != "fail" && c.OrphanPets != "drop":
		return errors.Errorf("FFLOGS_ORPHAN_PETS must be fail or drop: %q", c.OrphanPets)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "FFLOGS_TIMEZONE %q", c.TimeZone)
	}
	return loc, nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
