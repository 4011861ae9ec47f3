package repositoryadapter

import (
	"context"
	"reflect"
	"testing"
)

func TestNewInstanceProvider(t *testing.T) {
	p := NewInstanceProvider{}

	v, err := p.Provide(reflect.TypeFor[string]())
	if err != nil || v != "" {
		t.Fatalf("string = (%v, %v), want empty string", v, err)
	}

	v, err = p.Provide(reflect.TypeFor[int]())
	if err != nil || v != 0 {
		t.Fatalf("int = (%v, %v), want 0", v, err)
	}

	v, err = p.Provide(reflect.TypeFor[*int]())
	if err != nil {
		t.Fatalf("pointer: %v", err)
	}
	ptr, ok := v.(*int)
	if !ok || ptr == nil || *ptr != 0 {
		t.Fatalf("pointer = %v, want a fresh zero pointee", v)
	}

	v, err = p.Provide(reflect.TypeFor[context.Context]())
	if err != nil {
		t.Fatalf("context: %v", err)
	}
	if ctx, ok := v.(context.Context); !ok || ctx == nil {
		t.Fatalf("context = %v, want context.Background()", v)
	}
}

func TestProviderFunc(t *testing.T) {
	p := ProviderFunc(func(rt reflect.Type) (any, error) {
		return rt.Kind().String(), nil
	})
	v, err := p.Provide(reflect.TypeFor[[]byte]())
	if err != nil || v != "slice" {
		t.Fatalf("Provide = (%v, %v)", v, err)
	}
}
