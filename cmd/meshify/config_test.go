package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLog returns a discarding logger entry for exercising warnings.
func testLog() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return logrus.NewEntry(logger)
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	assert.Equal(t, 50, cfg.Nodes)
	assert.InDelta(t, 0.15, cfg.ConnectionProb, 1e-9)
	assert.Equal(t, 80, cfg.DegreeCap)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.False(t, cfg.Render)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"nodes: 120\nconnection_prob: 0.25\nseed: 7\noutput_dir: /tmp/mesh\nrender: true\n",
	), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Nodes)
	assert.InDelta(t, 0.25, cfg.ConnectionProb, 1e-9)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "/tmp/mesh", cfg.OutputDir)
	assert.True(t, cfg.Render)
	// untouched keys keep their defaults
	assert.Equal(t, 80, cfg.DegreeCap)
}

func TestLoadConfig_UnknownKeyRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodez: 99\n"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err, "typoed keys must not silently fall back to defaults")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestClampNodes(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum", 5, defaultNodes},
		{"at minimum", 10, 10},
		{"in range", 250, 250},
		{"at maximum", 1000, 1000},
		{"above maximum", 4000, defaultNodes},
		{"unset", 0, defaultNodes},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Nodes: tc.in}
			cfg.clampNodes(testLog())
			assert.Equal(t, tc.want, cfg.Nodes)
		})
	}
}
