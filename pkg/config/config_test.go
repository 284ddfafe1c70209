package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8000" {
		t.Errorf("port = %q, want 8000", cfg.Server.Port)
	}
	if cfg.Cache.Type != "memory" {
		t.Errorf("cache type = %q, want memory", cfg.Cache.Type)
	}
	if cfg.Cache.Memory.MaxEntries != 10000 {
		t.Errorf("max entries = %d, want 10000", cfg.Cache.Memory.MaxEntries)
	}
	if cfg.TTL.Feed != 15*time.Minute {
		t.Errorf("feed ttl = %v, want 15m", cfg.TTL.Feed)
	}
	if cfg.TTL.Metadata != 24*time.Hour {
		t.Errorf("metadata ttl = %v, want 24h", cfg.TTL.Metadata)
	}
	if cfg.Upstream.BaseURL == "" {
		t.Error("upstream base URL should have a default")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("CACHE_TYPE", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/test-cache.db")
	t.Setenv("FEED_TTL", "5m")
	t.Setenv("UPSTREAM_RATE_LIMIT", "2.5")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("port = %q, want 9999", cfg.Server.Port)
	}
	if cfg.Cache.Type != "sqlite" {
		t.Errorf("cache type = %q, want sqlite", cfg.Cache.Type)
	}
	if cfg.Cache.SQLite.Path != "/tmp/test-cache.db" {
		t.Errorf("sqlite path = %q", cfg.Cache.SQLite.Path)
	}
	if cfg.TTL.Feed != 5*time.Minute {
		t.Errorf("feed ttl = %v, want 5m", cfg.TTL.Feed)
	}
	if cfg.Upstream.RequestsPerSecond != 2.5 {
		t.Errorf("upstream rate limit = %v, want 2.5", cfg.Upstream.RequestsPerSecond)
	}
	if !cfg.Log.JSONFormat {
		t.Error("log JSON format should be enabled")
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("FEED_TTL", "garbage")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Cache.Redis.DB != 0 {
		t.Errorf("redis db = %d, want default 0", cfg.Cache.Redis.DB)
	}
	if cfg.TTL.Feed != 15*time.Minute {
		t.Errorf("feed ttl = %v, want default 15m", cfg.TTL.Feed)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8000"},
			Cache:    CacheConfig{Type: "memory"},
			Upstream: UpstreamConfig{BaseURL: "https://gdata.youtube.com"},
			TTL:      TTLConfig{Feed: 15 * time.Minute, Metadata: 24 * time.Hour},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty port", func(c *Config) { c.Server.Port = "" }},
		{"unknown cache type", func(c *Config) { c.Cache.Type = "memcached" }},
		{"redis without address", func(c *Config) { c.Cache.Type = "redis" }},
		{"sqlite without path", func(c *Config) { c.Cache.Type = "sqlite" }},
		{"empty upstream url", func(c *Config) { c.Upstream.BaseURL = "" }},
		{"zero feed ttl", func(c *Config) { c.TTL.Feed = 0 }},
		{"negative metadata ttl", func(c *Config) { c.TTL.Metadata = -time.Hour }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
