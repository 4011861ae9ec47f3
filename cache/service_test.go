package cache

import (
	"context"
	"errors"
	"testing"
)

// mockService records calls and returns canned values.
type mockService struct {
	getOrFetchCalls []string
	result          any
	err             error
	fetchInstead    bool
}

func (m *mockService) GetOrFetch(ctx context.Context, key string, fetchFn any) (any, error) {
	m.getOrFetchCalls = append(m.getOrFetchCalls, key)
	if m.err != nil {
		return nil, m.err
	}
	if m.fetchInstead {
		return fetchFn.(FetchFn[[]string])(ctx)
	}
	return m.result, nil
}

func (m *mockService) Delete(ctx context.Context, key string) error            { return nil }
func (m *mockService) DeleteByPrefix(ctx context.Context, prefix string) error { return nil }
func (m *mockService) InvalidateKeys(ctx context.Context, keys []string) error { return nil }

func TestGetOrFetch_typedResult(t *testing.T) {
	svc := &mockService{result: []string{"a", "b"}}

	got, err := GetOrFetch(context.Background(), svc, "k", func(ctx context.Context) ([]string, error) {
		t.Fatal("fetch should not run on a cache hit")
		return nil, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if len(got) != 2 || got[0] != "a" {
		t.Fatalf("got = %v", got)
	}
	if len(svc.getOrFetchCalls) != 1 || svc.getOrFetchCalls[0] != "k" {
		t.Fatalf("calls = %v", svc.getOrFetchCalls)
	}
}

func TestGetOrFetch_runsFetchOnMiss(t *testing.T) {
	svc := &mockService{fetchInstead: true}

	got, err := GetOrFetch(context.Background(), svc, "k", func(ctx context.Context) ([]string, error) {
		return []string{"fresh"}, nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch: %v", err)
	}
	if len(got) != 1 || got[0] != "fresh" {
		t.Fatalf("got = %v", got)
	}
}

func TestGetOrFetch_propagatesServiceError(t *testing.T) {
	sentinel := errors.New("backend down")
	svc := &mockService{err: sentinel}

	got, err := GetOrFetch(context.Background(), svc, "k", func(ctx context.Context) ([]string, error) {
		return []string{"unused"}, nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want the service error", err)
	}
	if got != nil {
		t.Fatalf("got = %v, want the zero value on error", got)
	}
}
