package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.APIBaseURL != "https://api.github.com" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PerPage != 10 {
		t.Errorf("PerPage = %d, want 10", cfg.PerPage)
	}
	if cfg.Debounce() != 350*time.Millisecond {
		t.Errorf("Debounce = %v, want 350ms", cfg.Debounce())
	}
	if cfg.DetailTTL() != 5*time.Minute {
		t.Errorf("DetailTTL = %v, want 5m", cfg.DetailTTL())
	}
	if cfg.RequestTimeout() != 10*time.Second {
		t.Errorf("RequestTimeout = %v, want 10s", cfg.RequestTimeout())
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PerPage != DefaultPerPage || cfg.Path != "" {
		t.Errorf("missing config should yield defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
api_base_url = "https://github.example.com/api/v3"
per_page = 30
debounce_ms = 200
log_level = "debug"
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.APIBaseURL != "https://github.example.com/api/v3" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PerPage != 30 {
		t.Errorf("PerPage = %d, want 30", cfg.PerPage)
	}
	if cfg.Debounce() != 200*time.Millisecond {
		t.Errorf("Debounce = %v, want 200ms", cfg.Debounce())
	}
	// Unset fields keep their defaults
	if cfg.DetailTTLMinutes != 5 {
		t.Errorf("DetailTTLMinutes = %d, want default 5", cfg.DetailTTLMinutes)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
}

func TestLoadSearchesUpward(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `per_page = 50`)
	nested := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PerPage != 50 {
		t.Errorf("PerPage = %d, want 50 from ancestor config", cfg.PerPage)
	}
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "per_page too large", content: `per_page = 101`},
		{name: "per_page zero", content: `per_page = 0`},
		{name: "negative debounce", content: `debounce_ms = -1`},
		{name: "bad base url", content: `api_base_url = "ftp://nope"`},
		{name: "zero ttl", content: `detail_ttl_minutes = 0`},
		{name: "zero timeout", content: `request_timeout_sec = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Errorf("LoadFile accepted invalid config %q", tt.content)
			}
		})
	}
}

func TestTokenEnvExpansion(t *testing.T) {
	t.Setenv("GHBROWSE_TEST_TOKEN", "abc123")
	path := writeConfig(t, t.TempDir(), `token = "${GHBROWSE_TEST_TOKEN}"`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := cfg.GetToken(); got != "abc123" {
		t.Errorf("GetToken() = %q, want expanded value", got)
	}
}

func TestTokenUnsetEnvFails(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `token = "${GHBROWSE_DEFINITELY_UNSET}"`)
	if _, err := LoadFile(path); err == nil {
		t.Error("LoadFile should reject a token referencing an unset variable")
	}
}

func TestTokenFallsBackToGithubToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "from-env")
	cfg := Default()
	if got := cfg.GetToken(); got != "from-env" {
		t.Errorf("GetToken() = %q, want GITHUB_TOKEN fallback", got)
	}
}
