package di

import (
	"reflect"

	"github.com/goliatone/go-resource-adapter/adaptercache"
	"github.com/goliatone/go-resource-adapter/cache"
	"github.com/goliatone/go-resource-adapter/registry"
	"github.com/goliatone/go-resource-adapter/repositoryadapter"
)

// Container provides dependency injection for the adapter stack. It holds
// singleton instances of the cache service, key serializer, parameter
// provider and resource registry, and offers factory helpers for building
// adapters wired to them.
type Container struct {
	cacheService  cache.CacheService
	keySerializer cache.KeySerializer
	provider      repositoryadapter.ParameterProvider
	registry      *registry.Registry
	config        cache.Config
}

// Option customizes a Container during construction.
type Option func(*Container)

// WithParameterProvider replaces the default NewInstanceProvider.
func WithParameterProvider(p repositoryadapter.ParameterProvider) Option {
	return func(c *Container) { c.provider = p }
}

// WithKeySerializer replaces the default key serializer.
func WithKeySerializer(ks cache.KeySerializer) Option {
	return func(c *Container) { c.keySerializer = ks }
}

// NewContainer creates a container with the provided cache configuration.
func NewContainer(config cache.Config, opts ...Option) (*Container, error) {
	cacheService, err := cache.NewCacheService(config)
	if err != nil {
		return nil, err
	}

	c := &Container{
		cacheService:  cacheService,
		keySerializer: cache.NewDefaultKeySerializer(),
		provider:      repositoryadapter.NewInstanceProvider{},
		registry:      registry.New(),
		config:        config,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewContainerWithDefaults creates a container using the default cache
// configuration.
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(cache.DefaultConfig(), opts...)
}

// CacheService returns the singleton cache service instance.
func (c *Container) CacheService() cache.CacheService { return c.cacheService }

// KeySerializer returns the singleton key serializer instance.
func (c *Container) KeySerializer() cache.KeySerializer { return c.keySerializer }

// Provider returns the parameter provider adapters are built with.
func (c *Container) Provider() repositoryadapter.ParameterProvider { return c.provider }

// Registry returns the container's resource registry.
func (c *Container) Registry() *registry.Registry { return c.registry }

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cache.Config { return c.config }

// NewAdapter builds an adapter over repo using the container's parameter
// provider.
//
// Go methods cannot carry type parameters, so the factories are
// package-level functions: NewAdapter[Task, int64](container, repo).
func NewAdapter[T any, ID any](c *Container, repo repositoryadapter.MarkedRepository) (*repositoryadapter.Adapter[T, ID], error) {
	return repositoryadapter.New[T, ID](repo, c.provider)
}

// NewCachedAdapter builds an adapter over repo and wraps it with the
// container's cache service and key serializer.
func NewCachedAdapter[T any, ID any](c *Container, repo repositoryadapter.MarkedRepository) (*adaptercache.CachedAdapter[T, ID], error) {
	base, err := NewAdapter[T, ID](c, repo)
	if err != nil {
		return nil, err
	}
	return adaptercache.New(base, c.cacheService, c.keySerializer), nil
}

// Register records adapter in the container's registry under name, or
// under the resource type's derived name when name is empty.
func Register[T any, ID any](c *Container, name string, adapter repositoryadapter.ResourceAdapter[T, ID]) error {
	resource := reflect.TypeFor[T]()
	if name == "" {
		name = registry.DeriveName(resource)
	}
	return c.registry.Register(name, resource, adapter)
}
