package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.ParseModel)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.InsightModel)
	assert.True(t, cfg.InsightsEnabled)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.False(t, cfg.AIParsingAvailable())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("INSIGHTS_ENABLED", "false")
	t.Setenv("DEFAULT_LANGUAGE", "lv")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.AIParsingAvailable())
	assert.False(t, cfg.InsightsEnabled)
	assert.Equal(t, "lv", cfg.DefaultLanguage)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9000\"\nparse_model: custom-model\n"), 0o644))
	t.Setenv("CONFIG_FILE", path)

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "custom-model", cfg.ParseModel)

	// Environment still wins over the file.
	t.Setenv("PORT", "9001")
	assert.Equal(t, "9001", Load().Port)
}
