package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ken/kclosest/pkg/core/distance"
	"github.com/ken/kclosest/pkg/selector"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, string(distance.SquaredEuclidean), cfg.Selector.Metric)
	assert.Equal(t, "midpoint", cfg.Selector.Pivot)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kclosest.yaml")
	data := []byte(`
selector:
  pivot: random
  seed: 42
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "random", cfg.Selector.Pivot)
	assert.Equal(t, int64(42), cfg.Selector.Seed)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults
	assert.Equal(t, string(distance.SquaredEuclidean), cfg.Selector.Metric)
	assert.Equal(t, "text", cfg.Log.Format)

	opts, err := cfg.SelectorOptions()
	require.NoError(t, err)
	assert.Equal(t, selector.PivotRandom, selector.New(opts...).Pivot())
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"Unknown metric", "selector:\n  metric: manhattan\n"},
		{"Unknown pivot", "selector:\n  pivot: median\n"},
		{"Unknown level", "log:\n  level: loud\n"},
		{"Unknown format", "log:\n  format: xml\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "kclosest.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0644))

			_, err := LoadConfig(path)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kclosest.yaml")
		require.NoError(t, os.WriteFile(path, []byte("selector: [unclosed"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kclosest.yaml")
	cfg := DefaultConfig()
	cfg.Selector.Pivot = "random"
	cfg.Log.Format = "json"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
