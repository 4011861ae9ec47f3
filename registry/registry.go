// Package registry maps resource names to the adapter serving them. A
// framework dispatcher resolves the resource name from a request path and
// looks up the registered entry here; registration normally happens once
// during startup but the registry tolerates concurrent use throughout.
package registry

import (
	"errors"
	"reflect"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-resource-adapter/introspect"
)

var (
	// ErrEmptyName is returned when a resource name is empty.
	ErrEmptyName = errors.New("registry: empty resource name")
	// ErrNilResource is returned when a nil resource type is provided.
	ErrNilResource = errors.New("registry: nil resource type")
	// ErrNilAdapter is returned when a nil adapter is provided.
	ErrNilAdapter = errors.New("registry: nil adapter")
	// ErrConflict indicates an attempt to re-register a name with a
	// different resource type or adapter.
	ErrConflict = errors.New("registry: conflicting registration")
)

// Entry associates a resource name with its type and adapter. The adapter
// is held as any because adapters are generic over resource and id types;
// callers assert to the concrete ResourceAdapter they registered.
type Entry struct {
	Name     string
	Resource reflect.Type
	Adapter  any
}

// Registry is a concurrent name-to-entry map.
type Registry struct {
	entries *xsync.MapOf[string, Entry]
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: xsync.NewMapOf[string, Entry]()}
}

// Register associates name with the resource type and adapter. It is
// idempotent for an identical (name, resource, adapter) triple and fails
// with ErrConflict otherwise.
func (r *Registry) Register(name string, resource reflect.Type, adapter any) error {
	if name == "" {
		return ErrEmptyName
	}
	if resource == nil {
		return ErrNilResource
	}
	if adapter == nil {
		return ErrNilAdapter
	}

	entry := Entry{Name: name, Resource: resource, Adapter: adapter}
	existing, loaded := r.entries.LoadOrStore(name, entry)
	if loaded && !existing.same(entry) {
		return ErrConflict
	}
	return nil
}

// same reports whether two entries describe the identical registration.
// Adapters are compared by identity when comparable (the usual pointer
// case) and treated as distinct otherwise.
func (e Entry) same(other Entry) bool {
	if e.Resource != other.Resource {
		return false
	}
	av, bv := reflect.ValueOf(e.Adapter), reflect.ValueOf(other.Adapter)
	if !av.Type().Comparable() || !bv.Type().Comparable() {
		return false
	}
	return e.Adapter == other.Adapter
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	return r.entries.Load(name)
}

// Entries returns a snapshot of all registrations (order unspecified).
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.entries.Size())
	r.entries.Range(func(_ string, e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Count returns the number of registered resources.
func (r *Registry) Count() int { return r.entries.Size() }

// Reset removes all registrations.
func (r *Registry) Reset() { r.entries.Clear() }

// DeriveName produces the default resource name for a type: the struct
// type name with its first letter lowered, pointers dereferenced.
func DeriveName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return introspect.LowerFirst(t.Name())
}
