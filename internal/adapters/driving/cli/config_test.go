package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmolabs/cosmo-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	configStore = store
	return func() { configStore = nil }
}

func TestConfigSetAndGet(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	out, err := execute(t, "config", "set", file.KeyVizierRowLimit, "500")
	require.NoError(t, err)
	assert.Contains(t, out, "vizier.row_limit = 500")

	out, err = execute(t, "config", "get", file.KeyVizierRowLimit)
	require.NoError(t, err)
	assert.Contains(t, out, "500")
}

func TestConfigGet_Unset(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	_, err := execute(t, "config", "get", "no.such.key")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not set")
}

func TestConfigShow_MasksToken(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	_, err := execute(t, "config", "set", file.KeyMastToken, "secret")
	require.NoError(t, err)

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "mast.token = (set)")
	assert.NotContains(t, out, "secret")
}

func TestConfig_NotConfigured(t *testing.T) {
	configStore = nil

	_, err := execute(t, "config", "get", "anything")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
