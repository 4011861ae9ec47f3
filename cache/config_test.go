package cache

import (
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Capacity == 0 || cfg.NumShards == 0 || cfg.TTL == 0 {
		t.Fatalf("defaults look unset: %+v", cfg)
	}
	if cfg.EarlyRefresh == nil {
		t.Fatal("defaults should enable early refresh")
	}
}

func TestConfigValidate_rejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero capacity", func(c *Config) { c.Capacity = 0 }},
		{"zero shards", func(c *Config) { c.NumShards = 0 }},
		{"zero ttl", func(c *Config) { c.TTL = 0 }},
		{"negative ttl", func(c *Config) { c.TTL = -time.Second }},
		{"eviction percentage over 100", func(c *Config) { c.EvictionPercentage = 101 }},
		{"negative refresh window", func(c *Config) { c.EarlyRefresh.MinAsyncRefreshTime = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestNewCacheService(t *testing.T) {
	svc, err := NewCacheService(DefaultConfig())
	if err != nil {
		t.Fatalf("NewCacheService: %v", err)
	}
	if svc == nil {
		t.Fatal("service should not be nil")
	}

	if _, err := NewCacheService(Config{}); err == nil {
		t.Fatal("an invalid config must be rejected")
	}
}
