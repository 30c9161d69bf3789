package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vehiclekit/pkg/config"
)

type testConfig struct {
	BaseURL string        `env:"TEST_CFG_BASE_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"TEST_CFG_TIMEOUT" envDefault:"30s"`
	Debug   bool          `env:"TEST_CFG_DEBUG" envDefault:"false"`
}

type requiredConfig struct {
	Token string `env:"TEST_CFG_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply when variables are unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_BASE_URL", "https://registry.internal:8080")
		t.Setenv("TEST_CFG_TIMEOUT", "5s")
		t.Setenv("TEST_CFG_DEBUG", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://registry.internal:8080", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("unparseable value fails", func(t *testing.T) {
		t.Setenv("TEST_CFG_TIMEOUT", "not-a-duration")

		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns on success", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("panics on failure", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
