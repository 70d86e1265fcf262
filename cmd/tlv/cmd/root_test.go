package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHexString(t *testing.T) {
	t.Run("plain hex", func(t *testing.T) {
		data, err := decodeHexString("0304aabb")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x03, 0x04, 0xAA, 0xBB}, data)
	})

	t.Run("whitespace is ignored", func(t *testing.T) {
		data, err := decodeHexString("03 04\naa\tbb")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x03, 0x04, 0xAA, 0xBB}, data)
	})

	t.Run("invalid hex", func(t *testing.T) {
		_, err := decodeHexString("zz")
		assert.Error(t, err)
	})
}

func TestReadInput(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "capture.bin")
		require.NoError(t, os.WriteFile(path, []byte{0x01, 0x00}, 0644))

		data, err := readInput(decodeCmd, []string{path})
		require.NoError(t, err)
		assert.Equal(t, []byte{0x01, 0x00}, data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readInput(decodeCmd, []string{filepath.Join(t.TempDir(), "nope.bin")})
		assert.Error(t, err)
	})

	t.Run("no input at all", func(t *testing.T) {
		_, err := readInput(decodeCmd, nil)
		assert.Error(t, err)
	})
}

func TestVariantFromFlags(t *testing.T) {
	require.NoError(t, rootCmd.ParseFlags([]string{"--variant", "inclusive"}))
	defer func() { _ = rootCmd.PersistentFlags().Set("variant", "standard") }()

	_, name, err := variantFromFlags(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, "inclusive", name)
}

func TestResolveServeConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := resolveServeConfig(serveCmd)
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "standard", cfg.Variant)
	})

	t.Run("file plus flag override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tlvkit.yaml")
		require.NoError(t, os.WriteFile(path, []byte("port: 9200\nvariant: inclusive\n"), 0600))
		require.NoError(t, serveCmd.Flags().Set("config", path))
		require.NoError(t, serveCmd.Flags().Set("bind", "0.0.0.0"))
		defer func() {
			_ = serveCmd.Flags().Set("config", "")
			_ = serveCmd.Flags().Set("bind", "127.0.0.1")
		}()

		cfg, err := resolveServeConfig(serveCmd)
		require.NoError(t, err)
		assert.Equal(t, 9200, cfg.Port)
		assert.Equal(t, "inclusive", cfg.Variant)
		assert.Equal(t, "0.0.0.0", cfg.Bind)
	})
}
