package cacheinfra

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.MissingRecordStorage {
		t.Fatal("defaults should enable missing record storage")
	}
}

func TestConfigValidate(t *testing.T) {
	valid := testConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero value", Config{}},
		{"negative capacity", Config{Capacity: -1, NumShards: 2, TTL: time.Minute, EvictionPercentage: 10}},
		{"zero ttl", Config{Capacity: 10, NumShards: 2, EvictionPercentage: 10}},
		{"negative ttl", Config{Capacity: 10, NumShards: 2, TTL: -time.Second, EvictionPercentage: 10}},
		{"eviction percentage zero", Config{Capacity: 10, NumShards: 2, TTL: time.Minute}},
		{"eviction percentage over 100", Config{Capacity: 10, NumShards: 2, TTL: time.Minute, EvictionPercentage: 200}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestConfigOptions(t *testing.T) {
	base := testConfig()
	if got := len(base.options()); got != 0 {
		t.Fatalf("bare config produced %d options, want 0", got)
	}

	full := base
	full.EarlyRefresh = &EarlyRefreshConfig{
		MinAsyncRefreshTime: time.Second,
		MaxAsyncRefreshTime: 2 * time.Second,
		SyncRefreshTime:     3 * time.Second,
		RetryBaseDelay:      10 * time.Millisecond,
	}
	full.MissingRecordStorage = true
	full.EvictionInterval = time.Minute
	if got := len(full.options()); got != 3 {
		t.Fatalf("full config produced %d options, want 3", got)
	}
}

func TestEarlyRefreshConfigValidate(t *testing.T) {
	good := EarlyRefreshConfig{MinAsyncRefreshTime: time.Second}
	if err := good.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := EarlyRefreshConfig{SyncRefreshTime: -time.Second}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected a validation error")
	}
}
