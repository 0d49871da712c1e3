// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8501 {
		t.Errorf("Server.Port = %d, want 8501", cfg.Server.Port)
	}
	if cfg.Catalog.Source != "file" || cfg.Catalog.Path != "data/games.json" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Catalog.MinReloadGap != 2*time.Second {
		t.Errorf("Catalog.MinReloadGap = %v, want 2s", cfg.Catalog.MinReloadGap)
	}
	if cfg.Recommend.DefaultN != 5 || cfg.Recommend.MaxN != 100 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9000
catalog:
  source: badger
  path: /var/lib/gamematch/store
  seed_path: /srv/games.csv
  reload_interval: 5m
recommend:
  default_n: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RECOMMEND_CACHE_TTL", "30s")
	t.Setenv("SOME_UNRELATED_VAR", "ignored")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file: port = %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("unset values keep defaults: host = %q", cfg.Server.Host)
	}
	if cfg.Catalog.Source != "badger" || cfg.Catalog.SeedPath != "/srv/games.csv" {
		t.Errorf("Catalog = %+v", cfg.Catalog)
	}
	if cfg.Catalog.ReloadInterval != 5*time.Minute {
		t.Errorf("Catalog.ReloadInterval = %v", cfg.Catalog.ReloadInterval)
	}
	if cfg.Recommend.DefaultN != 8 || cfg.Recommend.MaxN != 100 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.CacheTTL != 30*time.Second {
		t.Errorf("Recommend.CacheTTL = %v", cfg.Recommend.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}

	ec := cfg.Recommend.EngineConfig()
	if ec.Limits.DefaultN != 8 || ec.Cache.TTL != 30*time.Second || !ec.Cache.Enabled {
		t.Errorf("EngineConfig() = %+v", ec)
	}
	if err := ec.Validate(); err != nil {
		t.Errorf("EngineConfig().Validate() = %v", err)
	}

	src := cfg.Catalog.SourceConfig()
	if src.Kind != "badger" || src.Path != "/var/lib/gamematch/store" || src.Table != "games" {
		t.Errorf("SourceConfig() = %+v", src)
	}
}

func TestLoad_ConfigPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("catalog:\n  path: /srv/custom.csv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Catalog.Path != "/srv/custom.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "s3")

	_, err := LoadFile("")
	if err == nil || !strings.Contains(err.Error(), "catalog.source") {
		t.Errorf("LoadFile() error = %v, want catalog.source validation failure", err)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"empty path", func(c *Config) { c.Catalog.Path = " " }, "catalog.path"},
		{"bad format", func(c *Config) { c.Catalog.Format = "xml" }, "catalog.format"},
		{"bad table", func(c *Config) { c.Catalog.Source = "duckdb"; c.Catalog.DuckDBTable = "x;drop" }, "catalog.duckdb_table"},
		{"watch non-file", func(c *Config) { c.Catalog.Source = "badger"; c.Catalog.Watch = true }, "catalog.watch"},
		{"negative interval", func(c *Config) { c.Catalog.ReloadInterval = -time.Second }, "catalog.reload_interval"},
		{"zero default n", func(c *Config) { c.Recommend.DefaultN = 0 }, "recommend.default_n"},
		{"max below default", func(c *Config) { c.Recommend.MaxN = 1 }, "recommend.max_n"},
		{"min score", func(c *Config) { c.Recommend.MinScore = 2 }, "recommend.min_score"},
		{"rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }, "security.rate_limit_reqs"},
		{"rate limit disabled", func(c *Config) { c.Security.RateLimitDisabled = true; c.Security.RateLimitReqs = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":           "server.port",
		"CATALOG_SOURCE":      "catalog.source",
		"RECOMMEND_DEFAULT_N": "recommend.default_n",
		"LOG_LEVEL":           "logging.level",
		"PATH":                "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}

	changed := make(chan struct{}, 1)
	notify := func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}
	stop, err := WatchFile(path, notify, nil)
	if err != nil {
		t.Fatalf("WatchFile() error: %v", err)
	}
	defer func() { _ = stop() }()

	if err := os.WriteFile(path, []byte(`[{"Name":"Doom","Genre":"Shooter"}]`), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification within 5s")
	}
}
