package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "GIN_MODE", "CORS_ORIGINS", "TMDB_API_KEY", "GROQ_API_KEY", "GITHUB_API_KEY", "SESSION_TTL", "LLM_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	assert.False(t, cfg.Session.SecureCookie)
	assert.False(t, cfg.Groq.Configured())
	assert.False(t, cfg.GitHubModels.Configured())
	assert.Equal(t, 20*time.Second, cfg.Groq.Timeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("GROQ_API_KEY", "gsk_secret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("TMDB_TIMEOUT", "not-a-duration")

	cfg := FromEnv()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.Session.SecureCookie)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 8*time.Second, cfg.Catalog.Timeout)
	require.True(t, cfg.Groq.Configured())
	assert.Equal(t, "groq", cfg.Groq.Name)
}

func TestStringMasksSecrets(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_supersecret")
	t.Setenv("TMDB_API_KEY", "abc")

	out := FromEnv().String()

	assert.NotContains(t, out, "gsk_supersecret")
	assert.Contains(t, out, "gs****et")
	assert.Contains(t, out, "token:****")
	assert.Equal(t, "<unset>", mask(""))
}
