package repositoryadapter

import (
	"context"
	"reflect"
)

// ParameterProvider supplies runtime values for repository method
// parameters the adapter does not map itself: anything that is not the
// identifier, the identifier collection, the entity, or the query
// parameters. Producing such values (a security context, a per-request
// token) is a framework-level concern, so the strategy is injected.
type ParameterProvider interface {
	Provide(t reflect.Type) (any, error)
}

// ProviderFunc adapts a plain function to the ParameterProvider interface.
type ProviderFunc func(t reflect.Type) (any, error)

func (f ProviderFunc) Provide(t reflect.Type) (any, error) { return f(t) }

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// NewInstanceProvider is the default strategy: it produces a fresh
// zero-valued instance of the requested type, a new pointee for pointer
// types, and context.Background() for context.Context parameters.
type NewInstanceProvider struct{}

func (NewInstanceProvider) Provide(t reflect.Type) (any, error) {
	switch {
	case t == contextType:
		return context.Background(), nil
	case t.Kind() == reflect.Pointer:
		return reflect.New(t.Elem()).Interface(), nil
	default:
		return reflect.New(t).Elem().Interface(), nil
	}
}
