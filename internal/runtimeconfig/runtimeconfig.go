// Package runtimeconfig supplies the minimal, own-process configuration this
// module's components need to construct themselves: per-backend
// credentials, the cache file path, and the refresh interval. It is
// deliberately not a general-purpose CLI configuration system — argument
// parsing, subcommand dispatch, and credential storage belong to the
// external collaborator described in spec.md §1.
package runtimeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jra3/unitrack/internal/domain"
)

// Config is the top-level runtime configuration document.
type Config struct {
	Backend domain.BackendKind `yaml:"backend"`
	Backends BackendConfig     `yaml:"backends"`
	Cache   CacheConfig        `yaml:"cache"`
	Log     LogConfig          `yaml:"log"`
}

// BackendConfig holds one credential set per backend; only the selected
// Backend's entry needs to be populated.
type BackendConfig struct {
	YouTrack BackendCredentials `yaml:"youtrack"`
	Jira     BackendCredentials `yaml:"jira"`
	GitLab   BackendCredentials `yaml:"gitlab"`
	GitHub   BackendCredentials `yaml:"github"`
}

// BackendCredentials is the connection information for one backend.
type BackendCredentials struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token"`
	Email   string `yaml:"email"` // Jira Basic auth uses email:token
	Project string `yaml:"project"`
}

// CacheConfig controls the Context Cache (spec §4.E).
type CacheConfig struct {
	Path            string        `yaml:"path"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	MaxAge          time.Duration `yaml:"max_age"`
}

// LogConfig controls ambient logging verbosity.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig mirrors spec §4.E.1/§4.E.5 defaults: a cache file in the
// working directory, refreshed every 5 minutes, considered stale after 1
// hour of no refresh.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Path:            ".tracker-cache.json",
			RefreshInterval: 5 * time.Minute,
			MaxAge:          time.Hour,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load loads configuration using the real environment.
func Load() (*Config, error) {
	return LoadWithEnv(os.Getenv)
}

// LoadWithEnv loads configuration using the provided environment lookup
// function, so tests can supply isolated environment values.
func LoadWithEnv(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	configPath := getConfigPathWithEnv(getenv)
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment variables override the config file.
	if backend := getenv("UNITRACK_BACKEND"); backend != "" {
		cfg.Backend = domain.BackendKind(backend)
	}
	if token := getenv("UNITRACK_TOKEN"); token != "" {
		setToken(cfg, token)
	}
	if cachePath := getenv("UNITRACK_CACHE_PATH"); cachePath != "" {
		cfg.Cache.Path = cachePath
	}

	return cfg, nil
}

func setToken(cfg *Config, token string) {
	switch cfg.Backend {
	case domain.BackendYouTrack:
		cfg.Backends.YouTrack.Token = token
	case domain.BackendJira:
		cfg.Backends.Jira.Token = token
	case domain.BackendGitLab:
		cfg.Backends.GitLab.Token = token
	case domain.BackendGitHub:
		cfg.Backends.GitHub.Token = token
	}
}

func getConfigPathWithEnv(getenv func(string) string) string {
	if xdgConfig := getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "unitrack", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "unitrack", "config.yaml")
}
