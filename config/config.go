package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Store backends.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

type Config struct {
	Port        string `toml:"port"`
	ProxyURL    string `toml:"proxy"`
	DBPath      string `toml:"db"`
	Store       string `toml:"store"`
	LogFile     string `toml:"logfile"`
	Debug       bool   `toml:"debug"`
	Timeout     string `toml:"timeout"`
	OpenBrowser bool   `toml:"open"`
}

// Default returns the configuration used without a file or flags.
func Default() *Config {
	return &Config{
		Port:    "8081",
		DBPath:  "bkm.db",
		Store:   StoreSQLite,
		Timeout: "0s",
	}
}

// Load reads a TOML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err = toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store backend and the timeout.
func (c *Config) Validate() error {
	if c.Store != StoreSQLite && c.Store != StoreMemory {
		return fmt.Errorf("unknown store %q", c.Store)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return fmt.Errorf("negative timeout %q", c.Timeout)
	}
	return nil
}

// GetTimeout returns the fetch timeout, 0 meaning none.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// GetProxyURL returns the application URL, derived from the port
// when not set.
func (c *Config) GetProxyURL() string {
	if c.ProxyURL != "" {
		return c.ProxyURL
	}
	return "http://localhost:" + c.Port
}
