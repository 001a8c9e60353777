package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/velmoren/meshify/topo"
)

// Supported node-count window for a single run. The upper bound mirrors
// the capacity of the reference environment this tool models.
const (
	minNodes     = 10
	maxNodes     = 1000
	defaultNodes = 50
)

// Config is the YAML-backed run configuration. Flags override file values.
type Config struct {
	// Nodes is the synthesized network size, validated into [10, 1000].
	Nodes int `yaml:"nodes"`

	// ConnectionProb drives cross-edge density (see topo.Random).
	ConnectionProb float64 `yaml:"connection_prob"`

	// DegreeCap limits per-node adjacency; 0 means unbounded.
	DegreeCap int `yaml:"degree_cap"`

	// Seed makes a run reproducible; 0 selects the fixed default stream.
	Seed int64 `yaml:"seed"`

	// OutputDir receives the .dot (and optionally .png) files.
	OutputDir string `yaml:"output_dir"`

	// Render attempts Graphviz PNG rendering after export.
	Render bool `yaml:"render"`
}

// defaultConfig mirrors the topo synthesis defaults plus local output.
func defaultConfig() Config {
	t := topo.DefaultConfig()

	return Config{
		Nodes:          t.Nodes,
		ConnectionProb: t.ConnectionProb,
		DegreeCap:      t.DegreeCap,
		Seed:           t.Seed,
		OutputDir:      ".",
	}
}

// loadConfig reads a YAML file over the defaults. Unknown keys are
// rejected so typos surface instead of silently running with defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// clampNodes enforces the supported node window: out-of-range values fall
// back to the default with a non-fatal warning, matching the tolerant CLI
// contract (a bad -nodes must not kill a batch run).
func (c *Config) clampNodes(log *logrus.Entry) {
	if c.Nodes >= minNodes && c.Nodes <= maxNodes {
		return
	}
	log.WithFields(logrus.Fields{
		"nodes": c.Nodes,
		"min":   minNodes,
		"max":   maxNodes,
	}).Warnf("node count out of range, using default %d", defaultNodes)
	c.Nodes = defaultNodes
}
