package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the file searched for upward from the working directory.
const ConfigFileName = "ghbrowse.toml"

const (
	// DefaultAPIBaseURL is the public GitHub REST endpoint.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultPerPage is the page size used when the count input is empty.
	DefaultPerPage = 10

	// MinPerPage and MaxPerPage bound the per_page query parameter.
	MinPerPage = 1
	MaxPerPage = 100
)

// Config represents the complete configuration for ghbrowse
type Config struct {
	// API settings
	APIBaseURL string `toml:"api_base_url"`
	Token      string `toml:"token"`

	// UI behavior
	PerPage    int `toml:"per_page"`
	DebounceMS int `toml:"debounce_ms"`

	// Freshness and timeouts
	DetailTTLMinutes  int `toml:"detail_ttl_minutes"`
	RequestTimeoutSec int `toml:"request_timeout_sec"`

	LogLevel string `toml:"log_level"`

	// Path the config was loaded from; empty when defaults were used.
	Path string `toml:"-"`
}

// Default returns a Config with every field set to its default value.
// The browser must work with zero setup, so all fields are optional.
func Default() *Config {
	return &Config{
		APIBaseURL:        DefaultAPIBaseURL,
		PerPage:           DefaultPerPage,
		DebounceMS:        350,
		DetailTTLMinutes:  5,
		RequestTimeoutSec: 10,
		LogLevel:          "info",
	}
}

// Load loads configuration from ghbrowse.toml, searching upward from
// startPath. A missing config file is not an error: defaults apply.
func Load(startPath string) (*Config, error) {
	configPath, err := findConfigFile(startPath)
	if err != nil {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from an explicit path.
func LoadFile(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(configData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = configPath

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// findConfigFile searches for ghbrowse.toml starting from the given path
func findConfigFile(startPath string) (string, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	// Search upward for ghbrowse.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", fmt.Errorf("%s not found", ConfigFileName)
}

// expandEnvVars expands ${VAR_NAME} environment variables in the string
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]

		value := os.Getenv(varName)
		if value == "" {
			// Keep original if not set (will be caught in validation)
			return match
		}

		return value
	})
}

// validate checks that all configured values are usable
func (c *Config) validate() error {
	var errors []string

	if c.APIBaseURL == "" {
		errors = append(errors, "api_base_url must not be empty")
	} else if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		errors = append(errors, "api_base_url must be an http(s) URL")
	}
	if c.PerPage < MinPerPage || c.PerPage > MaxPerPage {
		errors = append(errors, fmt.Sprintf("per_page must be in [%d,%d]", MinPerPage, MaxPerPage))
	}
	if c.DebounceMS < 0 {
		errors = append(errors, "debounce_ms must not be negative")
	}
	if c.DetailTTLMinutes <= 0 {
		errors = append(errors, "detail_ttl_minutes must be positive")
	}
	if c.RequestTimeoutSec <= 0 {
		errors = append(errors, "request_timeout_sec must be positive")
	}

	// Check for unexpanded environment variables in the token
	if strings.Contains(c.Token, "${") {
		expanded := expandEnvVars(c.Token)
		if strings.Contains(expanded, "${") {
			re := regexp.MustCompile(`\$\{([^}]+)\}`)
			matches := re.FindStringSubmatch(c.Token)
			if len(matches) > 1 {
				return fmt.Errorf("environment variable %s is not set (required by token in %s)", matches[1], ConfigFileName)
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errors, ", "))
	}

	return nil
}

// Debounce returns the search debounce interval.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMS) * time.Millisecond
}

// DetailTTL returns the freshness window for cached user details.
func (c *Config) DetailTTL() time.Duration {
	return time.Duration(c.DetailTTLMinutes) * time.Minute
}

// RequestTimeout returns the per-request timeout for API calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// GetToken returns the API token with environment variables expanded.
// Falls back to GITHUB_TOKEN when the config does not set one.
func (c *Config) GetToken() string {
	if c.Token == "" {
		return os.Getenv("GITHUB_TOKEN")
	}

	return expandEnvVars(c.Token)
}
