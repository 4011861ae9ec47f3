package cache

import "context"

// KeySerializer builds a cache key from an operation name plus arbitrary
// arguments. Implementations must produce stable keys across calls, and
// keys for the same operation must share the operation's prefix so related
// entries can be invalidated together.
type KeySerializer interface {
	SerializeKey(op string, args ...any) string
}

// FetchFn is the function signature CacheService expects when fetching
// from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService exposes the read-through caching operations adapter
// decorators need. It is exported so alternate cache backends can be
// plugged in behind the same contract.
type CacheService interface {
	GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	InvalidateKeys(ctx context.Context, keys []string) error
}

// GetOrFetch is a type-safe wrapper that provides generic support over
// CacheService.
func GetOrFetch[T any](ctx context.Context, service CacheService, key string, fetchFn FetchFn[T]) (T, error) {
	result, err := service.GetOrFetch(ctx, key, fetchFn)
	if err != nil {
		var zero T
		return zero, err
	}
	return result.(T), nil
}
