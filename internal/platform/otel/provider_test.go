package otel_test

import (
	"context"
	"testing"

	"github.com/pleromasprings/website/internal/platform/otel"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(otel.EnvEndpoint, "")
	t.Setenv(otel.EnvEnabled, "")

	cfg, err := otel.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Enabled {
		t.Fatal("Enabled = false, want true by default")
	}
	if cfg.SampleRatio != 1 {
		t.Fatalf("SampleRatio = %v, want 1", cfg.SampleRatio)
	}
	if cfg.Exporting() {
		t.Fatal("expected no export without an endpoint")
	}
}

func TestLoadConfigRejectsBadFlag(t *testing.T) {
	t.Setenv(otel.EnvEnabled, "sometimes")

	if _, err := otel.LoadConfig(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfigExporting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  otel.Config
		want bool
	}{
		{name: "endpoint and enabled", cfg: otel.Config{Endpoint: "http://collector:4318", Enabled: true}, want: true},
		{name: "disabled", cfg: otel.Config{Endpoint: "http://collector:4318"}, want: false},
		{name: "blank endpoint", cfg: otel.Config{Endpoint: "  ", Enabled: true}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.cfg.Exporting(); got != tc.want {
				t.Fatalf("Exporting() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	t.Setenv(otel.EnvEndpoint, "http://localhost:4318")
	t.Setenv(otel.EnvEnabled, "false")

	shutdown, err := otel.Setup(context.Background(), "web")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown error = %v", err)
	}
}

func TestSetupWithConfigExportsToUnroutableCollector(t *testing.T) {
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, Environment: "test", SampleRatio: 0.5}
	shutdown, err := otel.SetupWithConfig(context.Background(), "web", cfg)
	if err != nil {
		t.Fatalf("SetupWithConfig() error = %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error = %v", err)
	}
}
