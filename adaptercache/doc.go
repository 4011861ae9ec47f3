// Package adaptercache provides a caching decorator for resource adapters.
//
// CachedAdapter implements the same ResourceAdapter interface as the
// adapter it wraps, making it a drop-in replacement: lookups follow a
// read-through pattern against a cache.CacheService, while Save and Delete
// pass straight through and invalidate the entries they affect.
//
// Cache keys are built by a cache.KeySerializer from a resource-scoped
// operation name plus the call arguments, so distinct query-parameter
// combinations cache independently and invalidation can target all
// variations of one lookup by key prefix. The saved entity's identifier is
// extracted with the property accessor (logical property "id"); when the
// entity exposes no such property, the decorator degrades to clearing all
// cached single-entity lookups for the resource.
//
// The decorator holds no per-call state and is safe for concurrent use
// when the wrapped adapter and cache service are.
package adaptercache
