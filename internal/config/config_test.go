package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Full(t *testing.T) {
	data := []byte(`
registry:
  file: ./gl.xml
  prefix: VK_
  timeout: 5s
  retries: 0
log:
  level: debug
output:
  dir: ./out
  package: gltf
`)

	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "./gl.xml", cfg.Registry.File)
	assert.Equal(t, DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, "VK_", cfg.Registry.Prefix)
	assert.Equal(t, 5*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, 0, cfg.Registry.RetryCount())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./out", cfg.Output.Dir)
	assert.Equal(t, "gltf", cfg.Output.Package)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "GL_", cfg.Registry.Prefix)
	assert.Equal(t, DefaultTimeout, cfg.Registry.Timeout)
	assert.Equal(t, DefaultRetries, cfg.Registry.RetryCount())
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("registry: ["))
	assert.ErrorContains(t, err, "failed to parse config YAML")

	_, err = Parse([]byte("registry:\n  retries: -1\n"))
	assert.ErrorContains(t, err, "retries")

	_, err = Parse([]byte("registry:\n  timeout: -1s\n"))
	assert.ErrorContains(t, err, "timeout")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  package: gltf\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "gltf", cfg.Output.Package)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()

	data, err := Marshal(cfg)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
