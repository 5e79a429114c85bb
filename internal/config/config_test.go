package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Port != 8000 {
		t.Errorf("default port = %d, want 8000", cfg.Port)
	}
	if cfg.Upstream != "flcksbr.xyz" {
		t.Errorf("default upstream = %q, want flcksbr.xyz", cfg.Upstream)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.Timeout())
	}
	if cfg.MaxRedirects != 5 {
		t.Errorf("default max_redirects = %d, want 5", cfg.MaxRedirects)
	}
	if cfg.Addr() != ":8000" {
		t.Errorf("default addr = %q, want :8000", cfg.Addr())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"port zero", func(c *Config) { c.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Port = 70000 }, true},
		{"empty upstream", func(c *Config) { c.Upstream = "" }, true},
		{"upstream with scheme", func(c *Config) { c.Upstream = "https://flcksbr.xyz" }, true},
		{"upstream with port", func(c *Config) { c.Upstream = "127.0.0.1:8443" }, false},
		{"http referer", func(c *Config) { c.Referer = "http://www.kinopoisk.ru/" }, true},
		{"empty referer", func(c *Config) { c.Referer = "" }, false},
		{"zero timeout", func(c *Config) { c.TimeoutSeconds = 0 }, true},
		{"negative redirects", func(c *Config) { c.MaxRedirects = -1 }, true},
		{"no redirects", func(c *Config) { c.MaxRedirects = 0 }, false},
		{"json logs", func(c *Config) { c.LogFormat = "JSON" }, false},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func writeConfig(t *testing.T, content string) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "kinorelay")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromTOML(t *testing.T) {
	t.Setenv("PORT", "")
	writeConfig(t, `
port = 9100
upstream = "mirror.example"
timeout_seconds = 10
max_redirects = 2
log_format = "json"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Port != 9100 {
		t.Errorf("port = %d, want 9100", cfg.Port)
	}
	if cfg.Upstream != "mirror.example" {
		t.Errorf("upstream = %q, want mirror.example", cfg.Upstream)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", cfg.Timeout())
	}
	if cfg.MaxRedirects != 2 {
		t.Errorf("max_redirects = %d, want 2", cfg.MaxRedirects)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("log_format = %q, want json", cfg.LogFormat)
	}
	if cfg.Referer != "https://www.kinopoisk.ru/" {
		t.Errorf("unset referer should keep default, got %q", cfg.Referer)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.Port != 8000 {
		t.Errorf("missing file should return defaults, got port = %d", cfg.Port)
	}
}

func TestLoadPortEnvOverridesFile(t *testing.T) {
	writeConfig(t, `port = 9100`)
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port = %d, want 3000 from PORT", cfg.Port)
	}
}

func TestLoadInvalidPortEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("PORT", "eighty")

	if _, err := Load(); err == nil {
		t.Error("expected error for non-numeric PORT")
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	t.Setenv("PORT", "")
	writeConfig(t, `port = "not a number`)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}
