// Package repositoryadapter exposes a uniform resource-operation interface
// over user-supplied repositories with heterogeneous method signatures.
//
// # Overview
//
// A repository is any value implementing MarkedRepository: it returns a
// Marker naming its resource type and which of its methods implement the
// five resource operations (findOne, findAll, findAllWithIDs, save,
// delete). The adapter resolves each named method once at construction
// into an immutable binding table and dispatches every call through a
// single reflective invocation, so downstream framework code never needs
// to know the repository's concrete method shapes.
//
// # Method shapes
//
// A marked method declares its primary parameters first, optionally
// followed by a queryparams.Params parameter, followed by any number of
// extra parameters:
//
//	FindOne(id int64, params queryparams.Params, token string) (*Task, error)
//	FindAll(params queryparams.Params) ([]*Task, error)
//	Save(task *Task) (*Task, error)
//	Delete(id int64, token string) error
//
// Extra parameters (anything beyond id/ids/entity/params) are resolved by
// the injected ParameterProvider, which lets the embedding framework
// supply request-scoped values such as a security context. Results follow
// the usual Go convention: an optional resource value and a trailing
// error, which is propagated to the caller unwrapped.
//
// # Errors
//
// Invoking an operation the marker does not declare fails with a
// NotSupportedError (errors.Is ErrNotSupported); capability-negotiation
// layers treat this as "operation unsupported" rather than as a bug. A
// declared method whose signature cannot satisfy the operation fails with
// a MethodShapeError (errors.Is ErrBadMethodShape), which indicates a
// defect in the repository and should surface to the integrator.
//
// # Concurrency
//
// Adapters hold no mutable per-call state. A single instance may be shared
// across goroutines provided the wrapped repository is itself safe for
// concurrent use.
package repositoryadapter
