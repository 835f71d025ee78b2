package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.OpenLogin != "a" {
		t.Errorf("Default OpenLogin key = %s, want a", defaults.OpenLogin)
	}
	if defaults.Logout != "L" {
		t.Errorf("Default Logout key = %s, want L", defaults.Logout)
	}
	if defaults.Search != "/" {
		t.Errorf("Default Search key = %s, want /", defaults.Search)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %s, want http://localhost:8080", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Timeout = %s, want 15s", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendSQLite {
		t.Errorf("Backend = %s, want %s", cfg.Session.Backend, BackendSQLite)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "khedma")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `api:
  base_url: "https://api.example.test"
  timeout: 3s
session:
  backend: memory
key_mappings:
  quit: "x"
  create: "c"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.Create != "c" {
		t.Errorf("Loaded Create key = %s, want c", cfg.KeyMappings.Create)
	}
	// Unset keys fall back to defaults
	if cfg.KeyMappings.Delete != "d" {
		t.Errorf("Default Delete key = %s, want d", cfg.KeyMappings.Delete)
	}
	if cfg.API.BaseURL != "https://api.example.test" {
		t.Errorf("BaseURL = %s", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory", cfg.Session.Backend)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "khedma")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "api:\n  base_url: \"http://from-file\"\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("KHEDMA_API_URL", "http://from-env")
	t.Setenv("KHEDMA_API_TIMEOUT", "750ms")
	t.Setenv("KHEDMA_SESSION_BACKEND", "redis")
	t.Setenv("KHEDMA_REDIS_ADDR", "cache:6380")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.API.BaseURL != "http://from-env" {
		t.Errorf("BaseURL = %s, want http://from-env", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 750*time.Millisecond {
		t.Errorf("Timeout = %s, want 750ms", cfg.API.Timeout)
	}
	if cfg.Session.Backend != BackendRedis {
		t.Errorf("Backend = %s, want redis", cfg.Session.Backend)
	}
	if cfg.Session.RedisAddr != "cache:6380" {
		t.Errorf("RedisAddr = %s, want cache:6380", cfg.Session.RedisAddr)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "khedma")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("api: [unterminated"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestResolveDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := Default()
	cfg.DataDir = dir

	got, err := cfg.ResolveDataDir()
	if err != nil {
		t.Fatalf("ResolveDataDir() failed: %v", err)
	}
	if got != dir {
		t.Errorf("ResolveDataDir() = %s, want %s", got, dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("data directory was not created: %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.KeyMappings.Refresh = "R"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.KeyMappings.Refresh != "R" {
		t.Errorf("Refresh key = %s, want R", loaded.KeyMappings.Refresh)
	}
}
