package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex-backend/internal/errs"
)

// clearEnv unsets every variable Load reads and restores it after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for key := range envKeys {
		if old, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, old) })
		}
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("API_URL", "https://pokeapi.co/api/v2/pokemon")
	t.Setenv("IMAGE_URL", "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://pokeapi.co/api/v2/pokemon", cfg.Upstream.APIURL)
	assert.Equal(t, "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon", cfg.Upstream.ImageURL)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Log.Development)

	// Defaults
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileWithEnvironmentOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9000
  rate_limit_per_sec: 2.5
  rate_limit_burst: 3
upstream:
  api_url: https://file.example/api/v2/pokemon
  image_url: https://file.example/sprites
log:
  level: debug
`)
	t.Setenv("IMAGE_URL", "https://env.example/sprites")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 3, cfg.Server.RateLimitBurst)
	assert.Equal(t, "https://file.example/api/v2/pokemon", cfg.Upstream.APIURL)
	assert.Equal(t, "https://env.example/sprites", cfg.Upstream.ImageURL, "environment takes precedence over the file")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing API_URL",
			env:  map[string]string{"IMAGE_URL": "https://img.example"},
		},
		{
			name: "missing IMAGE_URL",
			env:  map[string]string{"API_URL": "https://pokeapi.co/api/v2/pokemon"},
		},
		{
			name: "API_URL is not a URL",
			env:  map[string]string{"API_URL": "pokeapi", "IMAGE_URL": "https://img.example"},
		},
		{
			name: "unknown log level",
			env: map[string]string{
				"API_URL":   "https://pokeapi.co/api/v2/pokemon",
				"IMAGE_URL": "https://img.example",
				"LOG_LEVEL": "verbose",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := Load("")
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, errs.ErrConfig)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, errs.ErrConfig)
}
