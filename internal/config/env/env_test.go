package envconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.test")

	cfg, err := NewAPIConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://api.test", cfg.BaseURL())
	assert.Equal(t, "/api/search", cfg.SearchPath())
	assert.Equal(t, 10*time.Second, cfg.Timeout())
	assert.Equal(t, "https://api.test", cfg.ImageOrigin())
}

func TestAPIConfigRequiresBaseURL(t *testing.T) {
	t.Setenv("API_BASE_URL", "")

	_, err := NewAPIConfig()
	require.Error(t, err)
}

func TestGuardConfig(t *testing.T) {
	t.Setenv("SUBMISSION_GUARD", "redis")
	t.Setenv("SUBMISSION_GUARD_TTL", "5s")

	cfg, err := NewGuardConfig()
	require.NoError(t, err)
	assert.Equal(t, GuardRedis, cfg.Backend())
	assert.Equal(t, 5*time.Second, cfg.TTL())

	t.Setenv("SUBMISSION_GUARD", "etcd")
	_, err = NewGuardConfig()
	require.Error(t, err)
}

func TestHTTPServerAddress(t *testing.T) {
	t.Setenv("HTTP_HOST", "127.0.0.1")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := NewHTTPServerConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
}
