package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "127.0.0.1", config.Bind)
	assert.Equal(t, 8080, config.Port)
	assert.Equal(t, "./data", config.DataDir)
	assert.Equal(t, "standard", config.Variant)
	assert.Empty(t, config.APIKey)
	assert.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "inclusive variant", mutate: func(c *Config) { c.Variant = "inclusive" }},
		{name: "padded4 variant", mutate: func(c *Config) { c.Variant = "padded4" }},
		{name: "unknown variant", mutate: func(c *Config) { c.Variant = "exotic" }, wantErr: true},
		{name: "zero port", mutate: func(c *Config) { c.Port = 0 }, wantErr: true},
		{name: "port too large", mutate: func(c *Config) { c.Port = 70000 }, wantErr: true},
		{name: "empty data dir", mutate: func(c *Config) { c.DataDir = "" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)
			err := config.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "tlvkit.yaml")

	original := DefaultConfig()
	original.Port = 9200
	original.Variant = "inclusive"
	original.APIKey = "secret"
	require.NoError(t, Save(original, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tlvkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9000\n"), 0600))

	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, config.Port)
	assert.Equal(t, "127.0.0.1", config.Bind)
	assert.Equal(t, "standard", config.Variant)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tlvkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("variant: exotic\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}
