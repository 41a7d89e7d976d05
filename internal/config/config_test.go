package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_SecretRequired(t *testing.T) {
	t.Setenv("SECRET", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("DATABASE_URI", "postgres://localhost/syncboard")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.RunAddress)
	assert.Equal(t, "migrations", cfg.DB.Migrations)
	assert.Equal(t, "users.yaml", cfg.Auth.UsersFile)
	assert.Equal(t, 60*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "facebook/react", cfg.Sources.GitHubRepo)
	assert.Equal(t, []string{"London", "New York", "Tokyo", "Sydney", "Paris"}, cfg.Sources.WeatherCities)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SECRET", "test-secret")
	t.Setenv("RUN_ADDRESS", ":9000")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("WEATHER_CITIES", "Riga, Berlin")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.RunAddress)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, []string{"Riga", "Berlin"}, cfg.Sources.WeatherCities)
}
