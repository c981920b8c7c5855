package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const FileName = "pomotrack.yaml"

type Config struct {
	DataDir           string
	DBPath            string
	UserID            string
	Timezone          string
	LogLevel          string
	LogFormat         string
	PluginsPath       string
	ClassifierPlugin  string
	ExportReflections bool
}

type fileConfig struct {
	User              string `yaml:"user"`
	Timezone          string `yaml:"timezone"`
	Database          string `yaml:"database"`
	ExportReflections *bool  `yaml:"export_reflections"`
	Log               struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Classifier struct {
		Plugin string `yaml:"plugin"`
	} `yaml:"classifier"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:           dataDir,
		DBPath:            filepath.Join(dataDir, ".pomotrack", "pomotrack.db"),
		UserID:            "local",
		Timezone:          "UTC",
		LogLevel:          "info",
		LogFormat:         "text",
		PluginsPath:       filepath.Join(dataDir, "plugins", "plugins.json"),
		ExportReflections: true,
	}, nil
}

// Load builds the defaults for dataDir, then applies pomotrack.yaml and
// POMOTRACK_* environment overrides in that order.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(filepath.Join(dataDir, FileName))
	switch {
	case err == nil:
		fc := fileConfig{}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("decode %s: %w", FileName, err)
		}
		cfg.apply(fc)
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	if v := strings.TrimSpace(os.Getenv("POMOTRACK_USER")); v != "" {
		cfg.UserID = v
	}
	if v := strings.TrimSpace(os.Getenv("POMOTRACK_TZ")); v != "" {
		cfg.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv("POMOTRACK_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.User != "" {
		c.UserID = fc.User
	}
	if fc.Timezone != "" {
		c.Timezone = fc.Timezone
	}
	if fc.Database != "" {
		c.DBPath = c.resolve(fc.Database)
	}
	if fc.ExportReflections != nil {
		c.ExportReflections = *fc.ExportReflections
	}
	if fc.Log.Level != "" {
		c.LogLevel = fc.Log.Level
	}
	if fc.Log.Format != "" {
		c.LogFormat = fc.Log.Format
	}
	if fc.Classifier.Plugin != "" {
		c.ClassifierPlugin = fc.Classifier.Plugin
	}
}

func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.DataDir, path)
}

// Location resolves Timezone; "Local" selects the host zone.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
