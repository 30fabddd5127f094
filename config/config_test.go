package config_test

import (
	"testing"
	"time"

	"fflogs_events/config"
	"fflogs_events/fflogs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		APIKey:     "key",
		BaseURL:    "https://www.fflogs.com:443/v1/",
		TimeZone:   "Asia/Tokyo",
		PageDelay:  time.Second,
		OrphanPets: "fail",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FFLOGS_API_KEY", "abc")
	t.Setenv("FFLOGS_BASE_URL", "")
	t.Setenv("FFLOGS_TIMEZONE", "")
	t.Setenv("FFLOGS_PAGE_DELAY", "")
	t.Setenv("FFLOGS_ORPHAN_PETS", "")

	cfg := config.Load()

	assert.Equal(t, "abc", cfg.APIKey)
	assert.Equal(t, "https://www.fflogs.com:443/v1/", cfg.BaseURL)
	assert.Equal(t, "Asia/Tokyo", cfg.TimeZone)
	assert.Equal(t, fflogs.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, fflogs.DefaultTimeZone, cfg.TimeZone)
	assert.Equal(t, time.Second, cfg.PageDelay)
	assert.Equal(t, "fail", cfg.OrphanPets)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FFLOGS_API_KEY", "abc")
	t.Setenv("FFLOGS_TIMEZONE", "UTC")
	t.Setenv("FFLOGS_PAGE_DELAY", "250ms")
	t.Setenv("FFLOGS_ORPHAN_PETS", "drop")
	t.Setenv("FFLOGS_PROXY", "http://127.0.0.1:50000")

	cfg := config.Load()

	assert.Equal(t, "UTC", cfg.TimeZone)
	assert.Equal(t, 250*time.Millisecond, cfg.PageDelay)
	assert.Equal(t, "drop", cfg.OrphanPets)
	assert.Equal(t, "http://127.0.0.1:50000", cfg.Proxy)
}

func TestLoad_InvalidDelayFallsBack(t *testing.T) {
	t.Setenv("FFLOGS_PAGE_DELAY", "soon")

	cfg := config.Load()
	assert.Equal(t, time.Second, cfg.PageDelay)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.Config)
		msg    string
	}{
		{"empty api key", func(c *config.Config) { c.APIKey = "" }, "FFLOGS_API_KEY"},
		{"empty base url", func(c *config.Config) { c.BaseURL = "" }, "FFLOGS_BASE_URL"},
		{"negative delay", func(c *config.Config) { c.PageDelay = -time.Second }, "FFLOGS_PAGE_DELAY"},
		{"bad orphan policy", func(c *config.Config) { c.OrphanPets = "keep" }, "FFLOGS_ORPHAN_PETS"},
		{"bad time zone", func(c *config.Config) { c.TimeZone = "Mars/Olympus" }, "FFLOGS_TIMEZONE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.NoError(t, validConfig().Validate())
}

func TestLocation(t *testing.T) {
	loc, err := validConfig().Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", loc.String())
}
