package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaultsSecret(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "operator-supplied")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "operator-supplied", cfg.SessionSecret)
	assert.True(t, cfg.IsProduction())
}
