package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func isolate(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.PreviewRows != 200 {
		t.Errorf("PreviewRows = %d, want 200", cfg.PreviewRows)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %s", cfg.SessionTTL)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Otel.Enabled {
		t.Error("otel should be disabled by default")
	}
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("CLOUDBILL_PORT", "9090")
	t.Setenv("CLOUDBILL_DATASET", "/tmp/billing.csv")
	t.Setenv("CLOUDBILL_SESSION_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9090 || cfg.DatasetPath != "/tmp/billing.csv" || cfg.SessionTTL != 5*time.Minute {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	isolate(t)
	dir, _ := os.Getwd()
	env := "CLOUDBILL_PREVIEW_ROWS=50\nCLOUDBILL_LOG_FORMAT=json\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("CLOUDBILL_PREVIEW_ROWS")
		os.Unsetenv("CLOUDBILL_LOG_FORMAT")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PreviewRows != 50 || cfg.Log.Format != "json" {
		t.Errorf("dotenv values not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Port: 8080, PreviewRows: 200, SessionTTL: time.Minute}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "port", mutate: func(c *Config) { c.Port = 70000 }, want: "CLOUDBILL_PORT"},
		{name: "preview", mutate: func(c *Config) { c.PreviewRows = 0 }, want: "CLOUDBILL_PREVIEW_ROWS"},
		{name: "ttl", mutate: func(c *Config) { c.SessionTTL = 0 }, want: "CLOUDBILL_SESSION_TTL"},
		{name: "otel endpoint", mutate: func(c *Config) { c.Otel.Enabled = true }, want: "CLOUDBILL_OTEL_ENDPOINT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			err := c.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.want)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
