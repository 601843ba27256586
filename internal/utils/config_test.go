package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecoflow-tools/ecoflow-tool/internal/utils"
	"github.com/ecoflow-tools/ecoflow-tool/pkg/file"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// TestLoadConfig_Full verifies all fields load from YAML.
func TestLoadConfig_Full(t *testing.T) {
	path := writeConfig(t, `
api:
  host: https://api-eu.ecoflow.com
  access_key: my-access-key
  secret_key: my-secret-key
  timeout: 15
logging:
  level: debug
`)

	config, err := utils.LoadConfig(path, file.NewFileService())
	require.NoError(t, err)

	assert.Equal(t, "https://api-eu.ecoflow.com", config.API.Host)
	assert.Equal(t, "my-access-key", config.API.AccessKey)
	assert.Equal(t, "my-secret-key", config.API.SecretKey)
	assert.Equal(t, time.Duration(15), config.API.Timeout)
	assert.Equal(t, "debug", config.Logging.Level)
}

// TestLoadConfig_Defaults verifies omitted fields receive defaults while
// credentials stay untouched.
func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, `
api:
  access_key: ak
  secret_key: sk
`)

	config, err := utils.LoadConfig(path, file.NewFileService())
	require.NoError(t, err)

	assert.Equal(t, "https://api.ecoflow.com", config.API.Host)
	assert.Equal(t, time.Duration(30), config.API.Timeout)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "ak", config.API.AccessKey)
}

// TestLoadConfig_MissingFile verifies the loader surfaces the file error.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := utils.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), file.NewFileService())
	assert.Error(t, err)
}
