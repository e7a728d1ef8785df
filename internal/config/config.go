// Package config loads the members fetcher configuration. Sources are applied
// in order, each overriding the last:
//  1. Built-in defaults
//  2. A YAML file, either given explicitly or found in a standard location
//  3. Environment variables, including those set by a .env file
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the fetcher needs at runtime
type Config struct {
	Token              string        `yaml:"token"`
	OutputPath         string        `yaml:"output_path"`
	SidebarScrapeDelay time.Duration `yaml:"-"`
	MemberScrapeDelay  time.Duration `yaml:"-"`
	LogLevel           string        `yaml:"log_level"`
	LogDir             string        `yaml:"log_dir"`
	QueueSize          int           `yaml:"queue_size"`
}

// fileConfig is the YAML layout. Delays are given in seconds.
type fileConfig struct {
	Token              *string  `yaml:"token"`
	OutputPath         *string  `yaml:"output_path"`
	SidebarScrapeDelay *float64 `yaml:"sidebar_scrape_delay"`
	MemberScrapeDelay  *float64 `yaml:"member_scrape_delay"`
	LogLevel           *string  `yaml:"log_level"`
	LogDir             *string  `yaml:"log_dir"`
	QueueSize          *int     `yaml:"queue_size"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		OutputPath:         "out",
		SidebarScrapeDelay: 100 * time.Millisecond,
		MemberScrapeDelay:  500 * time.Millisecond,
		LogLevel:           "info",
		QueueSize:          8,
	}
}

// defaultPaths are searched in order when no config file is given
func defaultPaths() []string {
	home := os.Getenv("HOME")
	return []string{
		"membersfetcher.yaml",
		"membersfetcher.yml",
		filepath.Join(home, ".config", "membersfetcher", "config.yaml"),
	}
}

// Load builds the configuration. A .env file in the working directory is
// loaded first if present; variables already set in the environment win.
// If configPath is empty the standard locations are searched and a missing
// file is not an error.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		for _, path := range defaultPaths() {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.OutputPath = expandPath(cfg.OutputPath)
	cfg.LogDir = expandPath(cfg.LogDir)

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Token != nil {
		cfg.Token = *fc.Token
	}
	if fc.OutputPath != nil {
		cfg.OutputPath = *fc.OutputPath
	}
	if fc.SidebarScrapeDelay != nil {
		d, err := secondsToDuration(*fc.SidebarScrapeDelay)
		if err != nil {
			return fmt.Errorf("invalid sidebar_scrape_delay in %s: %w", path, err)
		}
		cfg.SidebarScrapeDelay = d
	}
	if fc.MemberScrapeDelay != nil {
		d, err := secondsToDuration(*fc.MemberScrapeDelay)
		if err != nil {
			return fmt.Errorf("invalid member_scrape_delay in %s: %w", path, err)
		}
		cfg.MemberScrapeDelay = d
	}
	if fc.LogLevel != nil {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.LogDir != nil {
		cfg.LogDir = *fc.LogDir
	}
	if fc.QueueSize != nil {
		cfg.QueueSize = *fc.QueueSize
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if token := os.Getenv("DISCORD_TOKEN"); token != "" {
		cfg.Token = token
	}
	if out := os.Getenv("MF_OUTPUT_PATH"); out != "" {
		cfg.OutputPath = out
	}
	if delay := os.Getenv("MF_SIDEBAR_SCRAPE_DELAY"); delay != "" {
		d, err := parseSeconds(delay)
		if err != nil {
			return fmt.Errorf("invalid MF_SIDEBAR_SCRAPE_DELAY: %w", err)
		}
		cfg.SidebarScrapeDelay = d
	}
	if delay := os.Getenv("MF_MEMBER_SCRAPE_DELAY"); delay != "" {
		d, err := parseSeconds(delay)
		if err != nil {
			return fmt.Errorf("invalid MF_MEMBER_SCRAPE_DELAY: %w", err)
		}
		cfg.MemberScrapeDelay = d
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if dir := os.Getenv("MF_LOG_DIR"); dir != "" {
		cfg.LogDir = dir
	}
	return nil
}

// parseSeconds parses a decimal number of seconds such as "0.5"
func parseSeconds(s string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse seconds from '%s': %w", s, err)
	}
	return secondsToDuration(f)
}

// secondsToDuration rejects values a time.Duration cannot hold
func secondsToDuration(f float64) (time.Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("seconds must be finite, got: %v", f)
	}
	ns := math.Round(f * float64(time.Second))
	if math.Abs(ns) >= math.MaxInt64 {
		return 0, fmt.Errorf("seconds must be below %d, got: %v", math.MaxInt64/int64(time.Second), f)
	}
	return time.Duration(ns), nil
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks the loaded configuration before anything connects
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required (set it in the environment, a .env file or the config file)")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if c.SidebarScrapeDelay < 0 {
		return fmt.Errorf("sidebar scrape delay cannot be negative, got: %s", c.SidebarScrapeDelay)
	}
	if c.MemberScrapeDelay < 0 {
		return fmt.Errorf("member scrape delay cannot be negative, got: %s", c.MemberScrapeDelay)
	}
	if c.QueueSize < 1 {
		return fmt.Errorf("queue size must be positive, got: %d", c.QueueSize)
	}
	return nil
}
