// Package config loads and validates pipeline configuration from YAML
// files. Omitted keys keep their defaults.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/granthika/telkg/pkg/telkg/internalerr"
)

// Config is the pipeline configuration.
type Config struct {
	MinConfidence           float64 `yaml:"min_confidence"`
	ContextWindow           int     `yaml:"context_window"`
	SandhiMode              string  `yaml:"sandhi_mode"`
	EnableCompoundSplitting bool    `yaml:"enable_compound_splitting"`
	EnableVerbMorphology    bool    `yaml:"enable_verb_morphology"`
	MaxCacheSize            int     `yaml:"max_cache_size"`
	MaxDocumentSizeMB       int     `yaml:"max_document_size_mb"`
	MaxRelationDistance     int     `yaml:"max_relation_distance"`
	RelationThreshold       float64 `yaml:"relation_confidence_threshold"`
	Workers                 int     `yaml:"workers"`
	BatchSize               int     `yaml:"batch_size"`

	// Lexicon file paths; empty means built-in tables.
	VerbRootsPath string `yaml:"verb_roots_path"`
	StemsPath     string `yaml:"stems_path"`

	// Optional integrations.
	StorePath   string `yaml:"store_path"`
	MetricsPort int    `yaml:"metrics_port"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		MinConfidence:           0.7,
		ContextWindow:           5,
		SandhiMode:              "adaptive",
		EnableCompoundSplitting: true,
		EnableVerbMorphology:    true,
		MaxCacheSize:            10000,
		MaxDocumentSizeMB:       10,
		MaxRelationDistance:     5,
		RelationThreshold:       0.6,
		Workers:                 defaultWorkers(),
		BatchSize:               100,
	}
}

func defaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}
	return n
}

// Load reads a YAML config file on top of the defaults and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges every component assumes.
func (c *Config) Validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: min_confidence must be in [0, 1]", internalerr.ErrInvalidConfig)
	}
	if c.ContextWindow < 1 {
		return fmt.Errorf("%w: context_window must be >= 1", internalerr.ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size must be >= 1", internalerr.ErrInvalidConfig)
	}
	if c.MaxDocumentSizeMB < 1 {
		return fmt.Errorf("%w: max_document_size_mb must be >= 1", internalerr.ErrInvalidConfig)
	}
	if c.MaxCacheSize < 0 {
		return fmt.Errorf("%w: max_cache_size must be >= 0", internalerr.ErrInvalidConfig)
	}
	switch c.SandhiMode {
	case "strict", "adaptive", "permissive":
	default:
		return fmt.Errorf("%w: sandhi_mode must be strict, adaptive, or permissive",
			internalerr.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		c.Workers = defaultWorkers()
	}
	return nil
}
