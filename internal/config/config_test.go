package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FORMTERM_DEBOUNCE",
		"FORMTERM_LOG_LEVEL",
		"FORMTERM_LOG_FILE",
		"FORMTERM_MESSAGES_FILE",
		"FORMTERM_COUNTRY",
		"FORMTERM_DEBUG",
	} {
		// Setenv restores the original value after the test.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), config)
}

func TestLoadWithEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("FORMTERM_DEBOUNCE", "350ms")
	t.Setenv("FORMTERM_LOG_LEVEL", "WARN")
	t.Setenv("FORMTERM_LOG_FILE", "/tmp/formterm.log")
	t.Setenv("FORMTERM_MESSAGES_FILE", "messages.yaml")
	t.Setenv("FORMTERM_COUNTRY", "IN")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 350*time.Millisecond, config.DebounceDelay)
	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, "/tmp/formterm.log", config.LogFile)
	assert.Equal(t, "messages.yaml", config.MessagesFile)
	assert.Equal(t, "in", config.DefaultCountry)
}

func TestLoadDebugForcesDebugLevel(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("FORMTERM_DEBUG", "true")

	config, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("FORMTERM_DEBOUNCE", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("FORMTERM_DEBOUNCE", "200ms")
	t.Setenv("FORMTERM_LOG_LEVEL", "chatty")
	_, err = Load()
	assert.ErrorContains(t, err, "invalid log level")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero debounce", func(c *Config) { c.DebounceDelay = 0 }, true},
		{"negative debounce", func(c *Config) { c.DebounceDelay = -time.Second }, true},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, true},
		{"empty country", func(c *Config) { c.DefaultCountry = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := GetDefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
