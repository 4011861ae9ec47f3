// Package cache defines the caching contracts used when decorating
// resource adapters: a CacheService with read-through and invalidation
// operations, and a KeySerializer that turns an operation name plus its
// arguments into a stable key.
//
// The default CacheService implementation is backed by sturdyc (see
// NewCacheService); the default KeySerializer derives deterministic key
// segments from arbitrary argument values using reflection. Keys are
// structured as operation-name prefixes joined by KeySeparator, which is
// what allows DeleteByPrefix to invalidate every cached variation of one
// operation, or of one operation for one identifier.
package cache
