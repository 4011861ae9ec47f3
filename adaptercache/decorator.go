package adaptercache

import (
	"context"
	"reflect"

	"github.com/goliatone/go-resource-adapter/cache"
	"github.com/goliatone/go-resource-adapter/property"
	"github.com/goliatone/go-resource-adapter/queryparams"
	"github.com/goliatone/go-resource-adapter/registry"
	"github.com/goliatone/go-resource-adapter/repositoryadapter"
)

// defaultIDProperty is the logical property read from saved or deleted
// entities to target their cached lookups.
const defaultIDProperty = "id"

// CachedAdapter decorates a resource adapter with read-through caching.
// Lookups (FindOne, FindAll, FindAllWithIDs) are cached per serialized
// argument set; writes (Save, Delete) pass through and invalidate the
// affected entries by key prefix.
type CachedAdapter[T any, ID any] struct {
	base       repositoryadapter.ResourceAdapter[T, ID]
	cache      cache.CacheService
	keys       cache.KeySerializer
	scope      string
	idProperty string
}

var _ repositoryadapter.ResourceAdapter[any, any] = (*CachedAdapter[any, any])(nil)

// New wraps base with caching. Keys are scoped by the resource's derived
// name so one cache service can safely back adapters for many resources.
func New[T any, ID any](base repositoryadapter.ResourceAdapter[T, ID], cacheService cache.CacheService, keys cache.KeySerializer) *CachedAdapter[T, ID] {
	return &CachedAdapter[T, ID]{
		base:       base,
		cache:      cacheService,
		keys:       keys,
		scope:      registry.DeriveName(reflect.TypeFor[T]()),
		idProperty: defaultIDProperty,
	}
}

// FindOne returns the cached entity for id, fetching through the base
// adapter on a miss.
func (c *CachedAdapter[T, ID]) FindOne(id ID, params queryparams.Params) (T, error) {
	key := c.keys.SerializeKey(c.op("FindOne"), id, params)
	return cache.GetOrFetch(context.Background(), c.cache, key, func(context.Context) (T, error) {
		return c.base.FindOne(id, params)
	})
}

// FindAll returns the cached collection for params, fetching through the
// base adapter on a miss.
func (c *CachedAdapter[T, ID]) FindAll(params queryparams.Params) ([]T, error) {
	key := c.keys.SerializeKey(c.op("FindAll"), params)
	return cache.GetOrFetch(context.Background(), c.cache, key, func(context.Context) ([]T, error) {
		return c.base.FindAll(params)
	})
}

// FindAllWithIDs returns the cached collection for ids, fetching through
// the base adapter on a miss.
func (c *CachedAdapter[T, ID]) FindAllWithIDs(ids []ID, params queryparams.Params) ([]T, error) {
	key := c.keys.SerializeKey(c.op("FindAllWithIDs"), ids, params)
	return cache.GetOrFetch(context.Background(), c.cache, key, func(context.Context) ([]T, error) {
		return c.base.FindAllWithIDs(ids, params)
	})
}

// Save delegates to the base adapter and, on success, invalidates the
// saved entity's cached lookups along with every cached collection.
func (c *CachedAdapter[T, ID]) Save(entity T) (T, error) {
	result, err := c.base.Save(entity)
	if err == nil {
		c.invalidateEntity(result)
	}
	return result, err
}

// Delete delegates to the base adapter and, on success, invalidates the
// entity's cached lookups along with every cached collection.
func (c *CachedAdapter[T, ID]) Delete(id ID, params queryparams.Params) error {
	err := c.base.Delete(id, params)
	if err == nil {
		c.invalidateID(id)
	}
	return err
}

// Supports reports the base adapter's capability for op.
func (c *CachedAdapter[T, ID]) Supports(op repositoryadapter.Operation) bool {
	return c.base.Supports(op)
}

func (c *CachedAdapter[T, ID]) op(name string) string {
	return c.scope + cache.KeySeparator + name
}

// invalidateEntity targets the entity's id when the property accessor can
// extract it, and falls back to clearing all FindOne entries otherwise.
func (c *CachedAdapter[T, ID]) invalidateEntity(entity T) {
	ctx := context.Background()
	if id, err := property.Get(entity, c.idProperty); err == nil {
		c.cache.DeleteByPrefix(ctx, c.keys.SerializeKey(c.op("FindOne"), id)+cache.KeySeparator)
	} else {
		c.cache.DeleteByPrefix(ctx, c.op("FindOne")+cache.KeySeparator)
	}
	c.invalidateCollections(ctx)
}

func (c *CachedAdapter[T, ID]) invalidateID(id ID) {
	ctx := context.Background()
	c.cache.DeleteByPrefix(ctx, c.keys.SerializeKey(c.op("FindOne"), id)+cache.KeySeparator)
	c.invalidateCollections(ctx)
}

// invalidateCollections clears cached FindAll and FindAllWithIDs results.
// The trailing separator keeps the FindAll prefix from matching
// FindAllWithIDs keys.
func (c *CachedAdapter[T, ID]) invalidateCollections(ctx context.Context) {
	c.cache.DeleteByPrefix(ctx, c.op("FindAll")+cache.KeySeparator)
	c.cache.DeleteByPrefix(ctx, c.op("FindAllWithIDs")+cache.KeySeparator)
}
