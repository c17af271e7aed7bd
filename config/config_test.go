package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "data/users.json", cfg.Data.UsersFile)
	assert.Equal(t, 12, cfg.Auth.ExpiryHours)
}

func TestLoadConfigPrefixedEnvOverride(t *testing.T) {
	t.Setenv("HELPCENTRE_SERVER_PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadConfigHonoursSearchAPIEnv(t *testing.T) {
	t.Setenv("SEARCH_API_URL", "https://kb.example.com/search")
	t.Setenv("SEARCH_API_AUTH_TOKEN", "dXNlcjpwYXNz")
	t.Setenv("SEARCH_API_COMPANY_CODE", "acme")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://kb.example.com/search", cfg.ArticleAPI.URL)
	assert.Equal(t, "dXNlcjpwYXNz", cfg.ArticleAPI.AuthToken)
	assert.Equal(t, "acme", cfg.ArticleAPI.CompanyCode)
}

func TestPrefixedEnvWinsOverSearchAPIName(t *testing.T) {
	t.Setenv("SEARCH_API_URL", "https://old.example.com/search")
	t.Setenv("HELPCENTRE_ARTICLE_API_URL", "https://kb.example.com/search")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://kb.example.com/search", cfg.ArticleAPI.URL)
}
