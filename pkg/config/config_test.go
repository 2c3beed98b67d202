package config

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadReadsCredentialFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "  sk-or-test  ")
	t.Setenv(baseURLEnv, "")
	t.Setenv(modelEnv, "")
	t.Setenv(verboseEnv, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIKey != "sk-or-test" {
		t.Fatalf("api key = %q, want %q", cfg.APIKey, "sk-or-test")
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("base url = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Model != DefaultModel {
		t.Fatalf("model = %q, want %q", cfg.Model, DefaultModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Verbose {
		t.Fatal("expected verbose to default to false")
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-or-test")
	t.Setenv(baseURLEnv, "http://127.0.0.1:9999/v1")
	t.Setenv(modelEnv, "openai/gpt-4o-mini")
	t.Setenv(verboseEnv, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:9999/v1" {
		t.Fatalf("base url = %q", cfg.BaseURL)
	}
	if cfg.Model != "openai/gpt-4o-mini" {
		t.Fatalf("model = %q", cfg.Model)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose to be enabled")
	}
}

func TestLoadFailsWhenCredentialEmpty(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
	if !strings.Contains(err.Error(), APIKeyEnv) {
		t.Fatalf("expected error to name %s, got: %v", APIKeyEnv, err)
	}
}

func TestLoadFailsWhenCredentialAbsent(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	if err := os.Unsetenv(APIKeyEnv); err != nil {
		t.Fatalf("unset env: %v", err)
	}

	if _, err := Load(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
}

func TestLoadServerDefaultsAndOverrides(t *testing.T) {
	t.Setenv(hostEnv, "")
	t.Setenv(portEnv, "")
	if got := LoadServer().Addr(); got != "0.0.0.0:4000" {
		t.Fatalf("default addr = %q, want %q", got, "0.0.0.0:4000")
	}

	t.Setenv(hostEnv, "127.0.0.1")
	t.Setenv(portEnv, "8080")
	if got := LoadServer().Addr(); got != "127.0.0.1:8080" {
		t.Fatalf("addr = %q, want %q", got, "127.0.0.1:8080")
	}
}

func TestLoadFailsWhenCredentialBlank(t *testing.T) {
	t.Setenv(APIKeyEnv, "   ")

	if _, err := Load(); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Normalize(Config{APIKey: " key ", BaseURL: "  ", Timeout: -1})
	if cfg.APIKey != "key" {
		t.Fatalf("api key = %q, want trimmed", cfg.APIKey)
	}
	if cfg.BaseURL != DefaultBaseURL || cfg.Model != DefaultModel || cfg.Timeout != DefaultTimeout {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
