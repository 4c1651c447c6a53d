package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "dbus.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	return path
}

func TestLoadToolConfig(t *testing.T) {
	path := writeConfigFile(t, "language: eu\nconnectTimeoutMS: 3000\nreadTimeoutMS: 7000\n")

	config, err := LoadToolConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "eu", config.Language)
	assert.Equal(t, 3*time.Second, config.ConnectTimeout())
	assert.Equal(t, 7*time.Second, config.ReadTimeout())
}

func TestLoadToolConfigEmptyPath(t *testing.T) {
	config, err := LoadToolConfig("")
	require.NoError(t, err)

	assert.Empty(t, config.Language)
	assert.Zero(t, config.ConnectTimeout())
	assert.Zero(t, config.ReadTimeout())
}

func TestLoadToolConfigInvalidLanguage(t *testing.T) {
	path := writeConfigFile(t, "language: de\n")

	_, err := LoadToolConfig(path)
	assert.Error(t, err)
}

func TestLoadToolConfigMissingFile(t *testing.T) {
	_, err := LoadToolConfig(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
