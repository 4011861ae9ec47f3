package repositoryadapter

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotSupported matches NotSupportedError values via errors.Is. It is
	// the signal a capability-negotiation layer treats as "operation
	// unsupported" rather than as a bug.
	ErrNotSupported = errors.New("repositoryadapter: operation not supported")

	// ErrBadMethodShape matches MethodShapeError values via errors.Is. It
	// indicates a programming defect in the repository and should surface
	// to the integrator.
	ErrBadMethodShape = errors.New("repositoryadapter: invalid repository method")

	// ErrNilRepository is returned by New when the repository is nil.
	ErrNilRepository = errors.New("repositoryadapter: nil repository")

	// ErrNilProvider is returned by New when the parameter provider is nil.
	ErrNilProvider = errors.New("repositoryadapter: nil parameter provider")
)

// NotSupportedError reports that a repository declares no method for an
// operation.
type NotSupportedError struct {
	Operation  Operation
	Repository reflect.Type
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("repositoryadapter: repository %s declares no method for %s", e.Repository, e.Operation)
}

// Is lets errors.Is(err, ErrNotSupported) match.
func (e *NotSupportedError) Is(target error) bool { return target == ErrNotSupported }

// MethodShapeError reports that a marked repository method has a
// structurally invalid signature or result for its operation.
type MethodShapeError struct {
	Operation  Operation
	Repository reflect.Type
	Method     string
	Reason     string
}

func (e *MethodShapeError) Error() string {
	return fmt.Sprintf("repositoryadapter: method %s.%s for %s: %s", e.Repository, e.Method, e.Operation, e.Reason)
}

// Is lets errors.Is(err, ErrBadMethodShape) match.
func (e *MethodShapeError) Is(target error) bool { return target == ErrBadMethodShape }
