package property

import (
	"errors"
	"fmt"
	"reflect"
)

// Invalid-argument sentinels, checked eagerly before any reflective work.
var (
	// ErrNilTarget is returned when the target value is nil.
	ErrNilTarget = errors.New("property: nil target")
	// ErrEmptyName is returned when the property name is empty.
	ErrEmptyName = errors.New("property: empty property name")
	// ErrNotPointer is returned when a write targets a non-pointer value.
	ErrNotPointer = errors.New("property: write target must be a pointer")
)

// NotFoundError reports that no field or accessor matches a property name.
type NotFoundError struct {
	Type     reflect.Type
	Property string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("property: cannot find an accessor for %s.%s", e.Type, e.Property)
}

// AccessError reports that a property was resolved but cannot be reached,
// e.g. an unexported field without a matching accessor method.
type AccessError struct {
	Type     reflect.Type
	Property string
	Reason   string
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("property: cannot access %s.%s: %s", e.Type, e.Property, e.Reason)
}

// InvokeError wraps a failure that occurred while reading or writing a
// resolved property, preserving the underlying cause.
type InvokeError struct {
	Type     reflect.Type
	Property string
	Err      error
}

func (e *InvokeError) Error() string {
	return fmt.Sprintf("property: accessing %s.%s: %v", e.Type, e.Property, e.Err)
}

func (e *InvokeError) Unwrap() error { return e.Err }
