package runtimeconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jra3/unitrack/internal/domain"
)

// mockEnv creates an environment lookup function from a map.
func mockEnv(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}
	if cfg.Cache.Path != ".tracker-cache.json" {
		t.Errorf("DefaultConfig() Cache.Path = %q, want %q", cfg.Cache.Path, ".tracker-cache.json")
	}
	if cfg.Cache.RefreshInterval != 5*time.Minute {
		t.Errorf("DefaultConfig() Cache.RefreshInterval = %v, want %v", cfg.Cache.RefreshInterval, 5*time.Minute)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("DefaultConfig() Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadWithConfigFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "unitrack")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `
backend: jira
backends:
  jira:
    base_url: https://example.atlassian.net
    token: secret
cache:
  path: /tmp/cache.json
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	env := mockEnv(map[string]string{"XDG_CONFIG_HOME": tmpDir})
	cfg, err := LoadWithEnv(env)
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}

	if cfg.Backend != domain.BackendJira {
		t.Errorf("Backend = %q, want %q", cfg.Backend, domain.BackendJira)
	}
	if cfg.Backends.Jira.BaseURL != "https://example.atlassian.net" {
		t.Errorf("Backends.Jira.BaseURL = %q, want example URL", cfg.Backends.Jira.BaseURL)
	}
	if cfg.Cache.Path != "/tmp/cache.json" {
		t.Errorf("Cache.Path = %q, want /tmp/cache.json", cfg.Cache.Path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Parallel()
	env := mockEnv(map[string]string{
		"XDG_CONFIG_HOME":    t.TempDir(),
		"UNITRACK_BACKEND":   "github",
		"UNITRACK_TOKEN":     "gh-token",
		"UNITRACK_CACHE_PATH": "/custom/cache.json",
	})

	cfg, err := LoadWithEnv(env)
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if cfg.Backend != domain.BackendGitHub {
		t.Errorf("Backend = %q, want github", cfg.Backend)
	}
	if cfg.Backends.GitHub.Token != "gh-token" {
		t.Errorf("Backends.GitHub.Token = %q, want gh-token", cfg.Backends.GitHub.Token)
	}
	if cfg.Cache.Path != "/custom/cache.json" {
		t.Errorf("Cache.Path = %q, want /custom/cache.json", cfg.Cache.Path)
	}
}
