package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"PLEROMA_TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"PLEROMA_TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %v", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PLEROMA_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvFromUsesExplicitEnvironment(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{"PLEROMA_TEST_PORT": "9000", "PLEROMA_TEST_TIMEOUT": "250ms"})
	if err != nil {
		t.Fatalf("parse env from map: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("timeout = %v, want 250ms", cfg.Timeout)
	}
}

func TestParseEnvFromNilMapKeepsDefaults(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	if err := ParseEnvFrom(&cfg, nil); err != nil {
		t.Fatalf("parse env from nil map: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("port = %d, want 123", cfg.Port)
	}
}
