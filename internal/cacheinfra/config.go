// Package cacheinfra implements the cache.CacheService contract on top of
// the sturdyc in-memory cache.
package cacheinfra

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Config holds the settings for the sturdyc-backed cache service.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	Capacity int

	// NumShards is the number of cache shards; more shards improve
	// concurrency at the cost of memory overhead.
	NumShards int

	// TTL is the default time-to-live for cached entries.
	TTL time.Duration

	// EvictionPercentage is the share of entries (1-100) evicted when the
	// cache reaches capacity.
	EvictionPercentage int

	// EarlyRefresh enables stampede-protecting refreshes before entries
	// expire. Nil disables early refresh.
	EarlyRefresh *EarlyRefreshConfig

	// MissingRecordStorage remembers keys that produced no result so
	// repeated lookups for absent records skip the source of truth.
	MissingRecordStorage bool

	// EvictionInterval overrides how often expired entries are collected.
	// Zero keeps the backend default.
	EvictionInterval time.Duration
}

// EarlyRefreshConfig tunes the window in which entries are refreshed ahead
// of expiry.
type EarlyRefreshConfig struct {
	MinAsyncRefreshTime time.Duration
	MaxAsyncRefreshTime time.Duration
	SyncRefreshTime     time.Duration
	RetryBaseDelay      time.Duration
}

// DefaultConfig returns settings suitable for most deployments.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
		MissingRecordStorage: true,
	}
}

// Validate reports whether the configuration values are usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.TTL, validation.Required, validation.By(positiveDuration)),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
		validation.Field(&c.EarlyRefresh),
	)
}

// Validate reports whether the early refresh window is usable.
func (c EarlyRefreshConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.MinAsyncRefreshTime, validation.Min(time.Duration(0))),
		validation.Field(&c.MaxAsyncRefreshTime, validation.Min(time.Duration(0))),
		validation.Field(&c.SyncRefreshTime, validation.Min(time.Duration(0))),
		validation.Field(&c.RetryBaseDelay, validation.Min(time.Duration(0))),
	)
}

func positiveDuration(v any) error {
	if d, ok := v.(time.Duration); !ok || d <= 0 {
		return errors.New("must be a positive duration")
	}
	return nil
}

// options maps the configuration onto sturdyc client options. Capacity,
// NumShards, TTL and EvictionPercentage go to the constructor directly.
func (c Config) options() []sturdyc.Option {
	var opts []sturdyc.Option
	if c.EarlyRefresh != nil {
		opts = append(opts, sturdyc.WithEarlyRefreshes(
			c.EarlyRefresh.MinAsyncRefreshTime,
			c.EarlyRefresh.MaxAsyncRefreshTime,
			c.EarlyRefresh.SyncRefreshTime,
			c.EarlyRefresh.RetryBaseDelay,
		))
	}
	if c.MissingRecordStorage {
		opts = append(opts, sturdyc.WithMissingRecordStorage())
	}
	if c.EvictionInterval > 0 {
		opts = append(opts, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}
	return opts
}
