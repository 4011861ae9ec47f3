package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/viccon/sturdyc"
)

// Service adapts a sturdyc client to the cache.CacheService contract.
type Service struct {
	client *sturdyc.Client[any]
}

// NewSturdycService validates cfg and builds a sturdyc-backed service.
func NewSturdycService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cacheinfra: invalid config: %w", err)
	}
	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.options()...,
	)
	return &Service{client: client}, nil
}

var (
	contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errorType   = reflect.TypeOf((*error)(nil)).Elem()
)

// GetOrFetch returns the cached value for key, executing fetchFn on a miss
// and storing its result. fetchFn must have the shape
// func(context.Context) (T, error); generic fetch functions are bridged to
// the untyped sturdyc client via reflection.
func (s *Service) GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error) {
	if err := checkFetchFn(fetchFn); err != nil {
		return nil, err
	}
	return s.client.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return callFetchFn(ctx, fetchFn)
	})
}

// Delete removes a single cache entry.
func (s *Service) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// DeleteByPrefix removes every entry whose key starts with prefix.
func (s *Service) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}

// InvalidateKeys removes the given entries in one pass.
func (s *Service) InvalidateKeys(ctx context.Context, keys []string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}

// checkFetchFn verifies fetchFn matches func(context.Context) (T, error)
// before sturdyc sees it, so shape mistakes fail with a clear error
// instead of a type-conversion failure inside the cache.
func checkFetchFn(fetchFn any) error {
	if fetchFn == nil {
		return errors.New("cacheinfra: nil fetch function")
	}
	ft := reflect.TypeOf(fetchFn)
	if ft.Kind() != reflect.Func || ft.NumIn() != 1 || ft.NumOut() != 2 ||
		!ft.In(0).Implements(contextType) || !ft.Out(1).Implements(errorType) {
		return fmt.Errorf("cacheinfra: fetch function must be func(context.Context) (T, error), got %T", fetchFn)
	}
	return nil
}

// callFetchFn invokes a pre-validated fetch function, erasing its result
// type for storage in the untyped client.
func callFetchFn(ctx context.Context, fetchFn any) (any, error) {
	if fn, ok := fetchFn.(func(context.Context) (any, error)); ok {
		return fn(ctx)
	}
	out := reflect.ValueOf(fetchFn).Call([]reflect.Value{reflect.ValueOf(ctx)})
	var err error
	if !out[1].IsNil() {
		err = out[1].Interface().(error)
	}
	return out[0].Interface(), err
}
