package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.NotEmpty(t, cfg.Database.URI)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenExpiry)
	assert.NotEmpty(t, cfg.Server.Port)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
}

func TestMissingProviderKeysIsValidConfiguration(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := LoadConfig()

	// Absent keys must not prevent startup; the AI adapter degrades to
	// fallback responses instead.
	assert.Empty(t, cfg.AI.GeminiAPIKey)
	assert.Empty(t, cfg.AI.OpenAIAPIKey)
	assert.NotEmpty(t, cfg.AI.GeminiBaseURL)
	assert.NotEmpty(t, cfg.AI.OpenAIBaseURL)
}

func TestProviderBaseURLsAreOverridable(t *testing.T) {
	t.Setenv("GEMINI_BASE_URL", "http://127.0.0.1:9090")

	cfg := LoadConfig()
	assert.Equal(t, "http://127.0.0.1:9090", cfg.AI.GeminiBaseURL)
}

func TestParseOrigins(t *testing.T) {
	origins := parseOrigins(" http://a.example , ,http://b.example")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, origins)
}

func TestParseDurationFallsBackTo24h(t *testing.T) {
	assert.Equal(t, 24*time.Hour, parseDuration("nonsense"))
	assert.Equal(t, 2*time.Hour, parseDuration("2h"))
}
