// Package config resolves application configuration once at startup:
// yaml file, then .env, then process environment for the API key. The
// resolved value is injected into whatever needs it; nothing else in
// the program reads ambient state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider  = "anthropic"
	DefaultModel     = "claude-sonnet-4-20250514"
	DefaultKeyEnv    = "ANTHROPIC_API_KEY"
	DefaultMode      = "socratic"
	DefaultDataDir   = ".socratica"
	DefaultMaxTokens = 4096
)

type Config struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Mode      string `yaml:"mode"`
	DataDir   string `yaml:"data_dir"`
	MaxTokens int    `yaml:"max_tokens"`
}

func Default() *Config {
	return &Config{
		Provider:  DefaultProvider,
		Model:     DefaultModel,
		APIKeyEnv: DefaultKeyEnv,
		Mode:      DefaultMode,
		DataDir:   DefaultDataDir,
		MaxTokens: DefaultMaxTokens,
	}
}

// Load reads a yaml config over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config at path if it exists, otherwise the
// defaults.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveAPIKey loads a .env file when present, then reads the key
// from the configured environment variable.
func (c *Config) ResolveAPIKey() (string, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	key := os.Getenv(c.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("no API key: set %s (or put it in .env)", c.APIKeyEnv)
	}
	return key, nil
}
