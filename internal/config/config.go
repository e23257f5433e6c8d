// Package config holds phonedex configuration: Gemini credentials and
// models, browse-screen tunables and logging switches. Loaded from a yaml
// file with environment overrides applied on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all phonedex configuration.
type Config struct {
	// Gemini configuration
	Gemini GeminiConfig `yaml:"gemini"`

	// Browse-screen tunables
	Browse BrowseConfig `yaml:"browse"`

	// UI theme: "light" or "dark"
	Theme string `yaml:"theme"`

	// Debug enables verbose logging
	Debug bool `yaml:"debug"`
}

// GeminiConfig configures the enrichment client.
type GeminiConfig struct {
	APIKey      string `yaml:"api_key"`
	Model       string `yaml:"model"`        // list/detail fetches
	AdviceModel string `yaml:"advice_model"` // assistant answers
	Timeout     string `yaml:"timeout"`
}

// BrowseConfig configures the catalog browsing behavior.
type BrowseConfig struct {
	// Price ceiling slider bounds and starting position (currency units)
	MaxPrice       int `yaml:"max_price"`
	DefaultCeiling int `yaml:"default_ceiling"`
	PriceStep      int `yaml:"price_step"`

	// Remote backfill kicks in when a brand has fewer local records
	BrandThreshold int `yaml:"brand_threshold"`

	// Concurrent detail fetches during a live refresh
	RefreshFanout int `yaml:"refresh_fanout"`
}

// DefaultConfig returns the defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Gemini: GeminiConfig{
			Model:       "gemini-2.5-flash",
			AdviceModel: "gemini-3-flash-preview",
			Timeout:     "90s",
		},
		Browse: BrowseConfig{
			MaxPrice:       200000,
			DefaultCeiling: 150000,
			PriceStep:      5000,
			BrandThreshold: 8,
			RefreshFanout:  4,
		},
		Theme: "dark",
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "phonedex.yaml"
	}
	return filepath.Join(home, ".config", "phonedex", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the config as yaml, creating parent directories as needed.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over the file. The API key is
// the one setting users most often carry in the environment only.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if model := os.Getenv("PHONEDEX_MODEL"); model != "" {
		c.Gemini.Model = model
	}
	if theme := os.Getenv("PHONEDEX_THEME"); theme != "" {
		c.Theme = theme
	}
}

// GeminiTimeout parses the configured timeout, falling back to 90s.
func (c Config) GeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil || d <= 0 {
		return 90 * time.Second
	}
	return d
}

// Validate checks the tunables for nonsense values. A missing API key is
// not an error: the app runs in seed-data-only mode without one.
func (c Config) Validate() error {
	if c.Browse.MaxPrice <= 0 {
		return fmt.Errorf("browse.max_price must be positive, got %d", c.Browse.MaxPrice)
	}
	if c.Browse.DefaultCeiling <= 0 || c.Browse.DefaultCeiling > c.Browse.MaxPrice {
		return fmt.Errorf("browse.default_ceiling must be in (0, %d], got %d", c.Browse.MaxPrice, c.Browse.DefaultCeiling)
	}
	if c.Browse.RefreshFanout < 1 {
		return fmt.Errorf("browse.refresh_fanout must be at least 1, got %d", c.Browse.RefreshFanout)
	}
	if c.Browse.BrandThreshold < 0 {
		return fmt.Errorf("browse.brand_threshold must not be negative, got %d", c.Browse.BrandThreshold)
	}
	return nil
}
