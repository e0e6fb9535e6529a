package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/marcus/podview/internal/models"
)

const configFile = ".podview/config.json"

// Path returns the config file location for a base directory
func Path(baseDir string) string {
	return filepath.Join(baseDir, configFile)
}

// Load reads the config from disk
func Load(baseDir string) (*models.Config, error) {
	data, err := os.ReadFile(Path(baseDir))
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Config{}, nil
		}
		return nil, err
	}

	var cfg models.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(baseDir string, cfg *models.Config) error {
	configPath := Path(baseDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// Keys returns the settable config keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

type accessor struct {
	get func(*models.Config) string
	set func(*models.Config, string) error
}

var accessors = map[string]accessor{
	"catalog": {
		get: func(c *models.Config) string { return c.Catalog },
		set: func(c *models.Config, v string) error { c.Catalog = v; return nil },
	},
	"database": {
		get: func(c *models.Config) string { return c.Database },
		set: func(c *models.Config, v string) error { c.Database = v; return nil },
	},
	"source": {
		get: func(c *models.Config) string { return string(c.Source) },
		set: func(c *models.Config, v string) error {
			if v != "" && !models.IsValidSourceKind(models.SourceKind(v)) {
				return fmt.Errorf("invalid source %q", v)
			}
			c.Source = models.SourceKind(v)
			return nil
		},
	},
	"columns": {
		get: func(c *models.Config) string {
			if c.Columns == 0 {
				return ""
			}
			return strconv.Itoa(c.Columns)
		},
		set: func(c *models.Config, v string) error {
			if v == "" {
				c.Columns = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("columns must be a non-negative integer, got %q", v)
			}
			c.Columns = n
			return nil
		},
	},
	"debug": {
		get: func(c *models.Config) string { return strconv.FormatBool(c.Debug) },
		set: func(c *models.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("debug must be true or false, got %q", v)
			}
			c.Debug = b
			return nil
		},
	},
}

// Get returns a config value by key
func Get(baseDir, key string) (string, error) {
	a, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return "", err
	}
	return a.get(cfg), nil
}

// Set updates a config value by key and saves the file
func Set(baseDir, key, value string) error {
	a, ok := accessors[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	cfg, err := Load(baseDir)
	if err != nil {
		return err
	}
	if err := a.set(cfg, value); err != nil {
		return err
	}
	return Save(baseDir, cfg)
}
