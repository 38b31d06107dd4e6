package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"statistics": map[string]any{
			"maxPageSize": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "STATISTICS_MAXPAGESIZE", want: "statistics.maxPageSize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	tests := []struct {
		name        string
		statistics  *StatisticsConfig
		wantDefault int
		wantMax     int
	}{
		{name: "missing section", statistics: nil, wantDefault: 20, wantMax: 100},
		{name: "explicit values", statistics: &StatisticsConfig{DefaultPageSize: 10, MaxPageSize: 50}, wantDefault: 10, wantMax: 50},
		{name: "default capped by max", statistics: &StatisticsConfig{DefaultPageSize: 80, MaxPageSize: 30}, wantDefault: 30, wantMax: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Statistics: tt.statistics}
			applyDefaults(cfg)

			if cfg.Statistics.DefaultPageSize != tt.wantDefault {
				t.Fatalf("DefaultPageSize = %d, want %d", cfg.Statistics.DefaultPageSize, tt.wantDefault)
			}
			if cfg.Statistics.MaxPageSize != tt.wantMax {
				t.Fatalf("MaxPageSize = %d, want %d", cfg.Statistics.MaxPageSize, tt.wantMax)
			}
			if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
				t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`env:
  env: develop
  serviceName: statistics
http:
  port: 8080
  timeouts:
    readTimeout: 5s
statistics:
  defaultPageSize: 10
  maxPageSize: 40
`)
	if err := os.WriteFile(filepath.Join(dir, "unit.yaml"), content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("STATISTICS_MAXPAGESIZE", "60")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("unit")
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Env.ServiceName != "statistics" {
		t.Fatalf("ServiceName = %q", cfg.Env.ServiceName)
	}
	if cfg.HTTP.Port != 9090 {
		t.Fatalf("HTTP.Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.HTTP.Timeouts.ReadTimeout != 5*time.Second {
		t.Fatalf("ReadTimeout = %s, want 5s", cfg.HTTP.Timeouts.ReadTimeout)
	}
	if cfg.Statistics == nil || cfg.Statistics.MaxPageSize != 60 || cfg.Statistics.DefaultPageSize != 10 {
		t.Fatalf("Statistics = %+v", cfg.Statistics)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("absent"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
