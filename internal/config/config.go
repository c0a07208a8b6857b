// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the CLI looks for configuration when no --config flag
// is given.
const DefaultPath = "perprunner.yaml"

// App captures process-wide runtime settings.
type App struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

// RPC holds per-cluster endpoint overrides and the commitment level used for
// reads. Empty endpoints fall back to the public cluster defaults.
type RPC struct {
	MainnetURL string `yaml:"mainnet_url"`
	DevnetURL  string `yaml:"devnet_url"`
	Commitment string `yaml:"commitment"`
}

// Signer points at the mnemonic file. An empty path enables automatic
// discovery of signer.txt.
type Signer struct {
	Path string `yaml:"path"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App     App    `yaml:"app"`
	Cluster string `yaml:"cluster"`
	RPC     RPC    `yaml:"rpc"`
	Signer  Signer `yaml:"signer"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		App:     App{Name: "perprunner", LogLevel: "info"},
		Cluster: "mainnet",
		RPC:     RPC{Commitment: "confirmed"},
	}
}

// Load reads a YAML file from disk and hydrates a Config struct. A missing
// file yields defaults so the tool runs without any configuration at all.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	config := Default()
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv layers environment overrides on top of file values. A .env file is
// loaded best-effort first.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv("PERP_CLUSTER"); v != "" {
		c.Cluster = v
	}
	if v := os.Getenv("PERP_SIGNER_PATH"); v != "" {
		c.Signer.Path = v
	}
	if v := os.Getenv("PERP_RPC_URL"); v != "" {
		c.RPC.MainnetURL = v
		c.RPC.DevnetURL = v
	}
	if v := os.Getenv("PERP_COMMITMENT"); v != "" {
		c.RPC.Commitment = v
	}
}

// Endpoint returns the configured endpoint override for the cluster label, or
// empty when the public cluster default should be used.
func (c *Config) Endpoint(cluster string) string {
	if cluster == "devnet" {
		return c.RPC.DevnetURL
	}
	return c.RPC.MainnetURL
}
