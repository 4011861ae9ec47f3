// Package bunadapter bridges go-repository-bun repositories into the
// marked-repository convention so they can sit behind a resource adapter
// without any hand-written glue per resource.
package bunadapter

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"

	"github.com/goliatone/go-resource-adapter/queryparams"
	"github.com/goliatone/go-resource-adapter/repositoryadapter"
)

// Repository exposes a repository.Repository[T] through marked methods.
// Identifiers are strings, matching the underlying repository contract.
//
// Every marked method takes a trailing context.Context: the adapter treats
// it as an extra parameter and resolves it through its ParameterProvider,
// which is where request-scoped contexts enter the call
// (NewInstanceProvider supplies context.Background()).
type Repository[T any] struct {
	base     repository.Repository[T]
	criteria []repository.SelectCriteria
}

// New wraps base. The optional criteria are applied to every lookup, which
// is how callers scope the bridge to e.g. soft-delete-aware queries.
func New[T any](base repository.Repository[T], criteria ...repository.SelectCriteria) *Repository[T] {
	return &Repository[T]{base: base, criteria: criteria}
}

// ResourceMarker declares the operation capability table for the bridge.
func (r *Repository[T]) ResourceMarker() repositoryadapter.Marker {
	return repositoryadapter.Marker{
		Resource:       new(T),
		FindOne:        "FindOne",
		FindAll:        "FindAll",
		FindAllWithIDs: "FindAllWithIDs",
		Save:           "Save",
		Delete:         "Delete",
	}
}

// FindOne loads a single record by id.
func (r *Repository[T]) FindOne(id string, params queryparams.Params, ctx context.Context) (T, error) {
	return r.base.GetByID(ctx, id, r.criteria...)
}

// FindAll lists all records matching the bridge criteria. The total count
// reported by the underlying repository is dropped; pagination concerns
// live in the query-parameter layer, not in this core.
func (r *Repository[T]) FindAll(params queryparams.Params, ctx context.Context) ([]T, error) {
	records, _, err := r.base.List(ctx, r.criteria...)
	return records, err
}

// FindAllWithIDs loads the records for each id in order.
func (r *Repository[T]) FindAllWithIDs(ids []string, params queryparams.Params, ctx context.Context) ([]T, error) {
	records := make([]T, 0, len(ids))
	for _, id := range ids {
		record, err := r.base.GetByID(ctx, id, r.criteria...)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Save upserts the record, so both create and update flow through the
// adapter's single save operation.
func (r *Repository[T]) Save(record T, ctx context.Context) (T, error) {
	return r.base.Upsert(ctx, record)
}

// Delete removes the record with the given id. The underlying repository
// deletes by record, so the bridge loads it first.
func (r *Repository[T]) Delete(id string, ctx context.Context) error {
	record, err := r.base.GetByID(ctx, id, r.criteria...)
	if err != nil {
		return err
	}
	return r.base.Delete(ctx, record)
}
