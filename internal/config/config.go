// Package config provides configuration loading and structs for the placesearch server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/islandhop/placesearch/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Store     StoreConfig     `yaml:"store"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Search    SearchConfig    `yaml:"search"`
	Ranking   ranking.Config  `yaml:"ranking"`
	Rules     RulesConfig     `yaml:"rules"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CatalogConfig holds the catalog source location.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// StoreConfig holds paths for the precomputed embedding files.
type StoreConfig struct {
	IndexPath  string `yaml:"index_path"`
	VectorPath string `yaml:"vector_path"`
}

// EmbeddingConfig holds query-embedding provider settings. The API key is
// usually supplied through the environment rather than the file.
type EmbeddingConfig struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	Model       string `yaml:"model"`
	Dimensions  int    `yaml:"dimensions"`
	CacheSize   int    `yaml:"cache_size"`
	MaxAttempts int    `yaml:"max_attempts"`
}

// SearchConfig holds retrieval thresholds and result window sizes.
type SearchConfig struct {
	MinScore               float64 `yaml:"min_score"`
	MinSemanticScore       float64 `yaml:"min_semantic_score"`
	MaxResults             int     `yaml:"max_results"`
	ProfessionalMaxResults int     `yaml:"professional_max_results"`
	ParallelThreshold      int     `yaml:"parallel_threshold"`
}

// RulesConfig points at an optional trigger-rules file. Empty means the
// built-in tables.
type RulesConfig struct {
	Path string `yaml:"path"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path, configDir)
	cfg.Store.IndexPath = expandPath(cfg.Store.IndexPath, configDir)
	cfg.Store.VectorPath = expandPath(cfg.Store.VectorPath, configDir)
	if cfg.Rules.Path != "" {
		cfg.Rules.Path = expandPath(cfg.Rules.Path, configDir)
	}

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
