// Package config loads the serve command configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Redis configures the optional shared plan cache.
type Redis struct {
	Addr     string `yaml:"addr" json:"addr"`
	Password string `yaml:"password" json:"password"`
	DB       int    `yaml:"db" json:"db"`
}

// Config is the serve configuration file (braid.yaml or braid.json).
type Config struct {
	Addr     string `yaml:"addr" json:"addr"`
	CacheTTL string `yaml:"cache_ttl" json:"cache_ttl"`
	Redis    Redis  `yaml:"redis" json:"redis"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Addr: ":8080"}
}

// Load reads a configuration file (YAML or JSON by extension). A missing
// file at the default path is not an error, the defaults apply; when the
// caller passed the path explicitly a missing file is reported, so a typo
// in --config never silently starts the server on defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	return cfg, nil
}

// TTL parses CacheTTL, defaulting to zero (no expiration) when unset.
func (c Config) TTL() (time.Duration, error) {
	if c.CacheTTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache_ttl %q: %w", c.CacheTTL, err)
	}
	return d, nil
}
