package repositoryadapter

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-resource-adapter/queryparams"
)

// ResourceAdapter is the uniform interface framework code dispatches
// against. Adapter implements it; decorators wrap it.
type ResourceAdapter[T any, ID any] interface {
	FindOne(id ID, params queryparams.Params) (T, error)
	FindAll(params queryparams.Params) ([]T, error)
	FindAllWithIDs(ids []ID, params queryparams.Params) ([]T, error)
	Save(entity T) (T, error)
	Delete(id ID, params queryparams.Params) error
	Supports(op Operation) bool
}

var paramsType = reflect.TypeOf(queryparams.Params{})

// Adapter exposes the five resource operations over a marked repository
// through a single reflective invocation each. The binding table is
// computed once at construction and immutable afterwards; the adapter
// holds no per-call state and is safe for concurrent reuse as long as the
// wrapped repository is.
type Adapter[T any, ID any] struct {
	repo     reflect.Value
	repoType reflect.Type
	resource reflect.Type
	provider ParameterProvider
	bindings [numOperations]binding
}

var _ ResourceAdapter[any, any] = (*Adapter[any, any])(nil)

// binding associates an operation with its resolved method and argument
// plan. A structurally invalid method records its shape error here and
// surfaces it when the operation is invoked, not at construction.
type binding struct {
	present bool
	name    string
	method  reflect.Value
	plan    callPlan
	err     error
}

// callPlan maps call-site arguments onto the method's parameter list:
// primary arguments first, then the query parameters when declared, then
// provider-resolved extras in declared order.
type callPlan struct {
	hasParams bool
	extras    []reflect.Type
}

// New wraps repo, resolving each operation the marker declares into an
// immutable method binding. The marker must validate, its resource
// prototype must agree with T, and every named method must exist on repo.
func New[T any, ID any](repo MarkedRepository, provider ParameterProvider) (*Adapter[T, ID], error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if provider == nil {
		return nil, ErrNilProvider
	}

	marker := repo.ResourceMarker()
	if err := marker.Validate(); err != nil {
		return nil, fmt.Errorf("repositoryadapter: invalid marker on %T: %w", repo, err)
	}
	resource := reflect.TypeFor[T]()
	if declared := reflect.TypeOf(marker.Resource); indirect(declared) != indirect(resource) {
		return nil, fmt.Errorf("repositoryadapter: marker resource %s does not match adapter resource %s",
			declared, resource)
	}

	rv := reflect.ValueOf(repo)
	a := &Adapter[T, ID]{
		repo:     rv,
		repoType: rv.Type(),
		resource: resource,
		provider: provider,
	}
	for i, op := range operations {
		name := marker.methodFor(op)
		if name == "" {
			continue
		}
		m := rv.MethodByName(name)
		if !m.IsValid() {
			return nil, &MethodShapeError{Operation: op, Repository: a.repoType, Method: name,
				Reason: "method not found"}
		}
		plan, err := a.buildPlan(op, name, m.Type())
		a.bindings[i] = binding{present: true, name: name, method: m, plan: plan, err: err}
	}
	return a, nil
}

// FindOne invokes the find-one method with (id, params?, extras...).
func (a *Adapter[T, ID]) FindOne(id ID, params queryparams.Params) (T, error) {
	out, err := a.invoke(OpFindOne, params, typed(&id))
	if err != nil {
		var zero T
		return zero, err
	}
	return resultAs[T](a, OpFindOne, out)
}

// FindAll invokes the find-all method with (params?, extras...).
func (a *Adapter[T, ID]) FindAll(params queryparams.Params) ([]T, error) {
	out, err := a.invoke(OpFindAll, params)
	if err != nil {
		return nil, err
	}
	return resultAs[[]T](a, OpFindAll, out)
}

// FindAllWithIDs invokes the find-all-by-ids method with
// (ids, params?, extras...).
func (a *Adapter[T, ID]) FindAllWithIDs(ids []ID, params queryparams.Params) ([]T, error) {
	out, err := a.invoke(OpFindAllWithIDs, params, typed(&ids))
	if err != nil {
		return nil, err
	}
	return resultAs[[]T](a, OpFindAllWithIDs, out)
}

// Save invokes the save method with (entity, extras...) and returns the
// repository's result, so mutations such as an assigned identifier are
// visible to the caller.
func (a *Adapter[T, ID]) Save(entity T) (T, error) {
	out, err := a.invoke(OpSave, queryparams.Params{}, typed(&entity))
	if err != nil {
		var zero T
		return zero, err
	}
	return resultAs[T](a, OpSave, out)
}

// Delete invokes the delete method with (id, extras...). The params value
// is part of the uniform call signature; the delete plan never maps it, so
// a params parameter declared by the method is resolved as an extra.
func (a *Adapter[T, ID]) Delete(id ID, params queryparams.Params) error {
	_, err := a.invoke(OpDelete, params, typed(&id))
	return err
}

// Supports reports whether the repository declares a method for op. It is
// the capability probe used by negotiation layers; a declared method with
// an invalid shape still counts as declared and fails on invocation.
func (a *Adapter[T, ID]) Supports(op Operation) bool {
	i := opIndex(op)
	return i >= 0 && a.bindings[i].present
}

// ResourceType returns the resource type the adapter serves.
func (a *Adapter[T, ID]) ResourceType() reflect.Type { return a.resource }

// buildPlan validates the method arity for op and records how call-site
// arguments map onto the parameter list.
func (a *Adapter[T, ID]) buildPlan(op Operation, name string, mt reflect.Type) (callPlan, error) {
	lead := leadArity(op)
	if mt.NumIn() < lead {
		return callPlan{}, &MethodShapeError{Operation: op, Repository: a.repoType, Method: name,
			Reason: fmt.Sprintf("requires at least %d parameter(s), has %d", lead, mt.NumIn())}
	}

	next := lead
	plan := callPlan{}
	if paramsAllowed(op) && mt.NumIn() > next && mt.In(next) == paramsType {
		plan.hasParams = true
		next++
	}
	for i := next; i < mt.NumIn(); i++ {
		plan.extras = append(plan.extras, mt.In(i))
	}
	return plan, nil
}

// invoke performs the single delegated call for op: resolve the binding,
// assemble arguments, call, and split the trailing error result.
func (a *Adapter[T, ID]) invoke(op Operation, params queryparams.Params, lead ...reflect.Value) (reflect.Value, error) {
	b := &a.bindings[opIndex(op)]
	if !b.present {
		return reflect.Value{}, &NotSupportedError{Operation: op, Repository: a.repoType}
	}
	if b.err != nil {
		return reflect.Value{}, b.err
	}

	mt := b.method.Type()
	args := make([]reflect.Value, 0, mt.NumIn())
	for _, v := range lead {
		adapted, err := a.adaptArg(op, b.name, v, mt.In(len(args)))
		if err != nil {
			return reflect.Value{}, err
		}
		args = append(args, adapted)
	}
	if b.plan.hasParams {
		args = append(args, reflect.ValueOf(params))
	}
	for _, et := range b.plan.extras {
		v, err := a.provider.Provide(et)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("repositoryadapter: resolving %s parameter %s: %w", op, et, err)
		}
		ev, err := a.adaptExtra(op, b.name, v, et)
		if err != nil {
			return reflect.Value{}, err
		}
		args = append(args, ev)
	}

	out := b.method.Call(args)
	return splitError(out)
}

// adaptArg fits a primary argument (id, ids, entity) to the declared
// parameter type.
func (a *Adapter[T, ID]) adaptArg(op Operation, name string, v reflect.Value, want reflect.Type) (reflect.Value, error) {
	switch {
	case v.Type().AssignableTo(want):
		return v, nil
	case v.Type().ConvertibleTo(want):
		return v.Convert(want), nil
	}
	return reflect.Value{}, &MethodShapeError{Operation: op, Repository: a.repoType, Method: name,
		Reason: fmt.Sprintf("parameter type %s cannot accept %s", want, v.Type())}
}

// adaptExtra fits a provider-supplied value to the declared extra
// parameter type; a nil value becomes the type's zero value.
func (a *Adapter[T, ID]) adaptExtra(op Operation, name string, v any, want reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(want), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(want) {
		return rv, nil
	}
	return reflect.Value{}, fmt.Errorf("repositoryadapter: provider supplied %s for %s parameter %s of %s.%s",
		rv.Type(), op, want, a.repoType, name)
}

// splitError separates a trailing error result from the method's outputs
// and propagates it unwrapped so the repository's own failure surfaces.
func splitError(out []reflect.Value) (reflect.Value, error) {
	if len(out) == 0 {
		return reflect.Value{}, nil
	}
	last := out[len(out)-1]
	if last.Type().Implements(errorType) {
		if !last.IsNil() {
			return reflect.Value{}, last.Interface().(error)
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return reflect.Value{}, nil
	}
	return out[0], nil
}

// resultAs converts the method's first result to the adapter's declared
// result type; a mismatch is a repository defect, not a caller error.
func resultAs[R any, T any, ID any](a *Adapter[T, ID], op Operation, v reflect.Value) (R, error) {
	var zero R
	if !v.IsValid() {
		return zero, &MethodShapeError{Operation: op, Repository: a.repoType,
			Method: a.bindings[opIndex(op)].name, Reason: "method returns no result value"}
	}
	r, ok := v.Interface().(R)
	if !ok {
		return zero, &MethodShapeError{Operation: op, Repository: a.repoType,
			Method: a.bindings[opIndex(op)].name,
			Reason: fmt.Sprintf("result type %s is not %s", v.Type(), reflect.TypeFor[R]())}
	}
	return r, nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// typed returns the reflect value of *p's pointee with its static type
// preserved, so nil-valued arguments still carry type information.
func typed[V any](p *V) reflect.Value { return reflect.ValueOf(p).Elem() }

// leadArity is the number of structurally required primary parameters.
func leadArity(op Operation) int {
	if op == OpFindAll {
		return 0
	}
	// findOne, findAllWithIDs, save and delete all lead with one primary
	// argument; a zero-parameter method is a defect for these operations.
	return 1
}

// paramsAllowed reports whether op maps the caller's query parameters onto
// a declared queryparams.Params parameter.
func paramsAllowed(op Operation) bool {
	switch op {
	case OpFindOne, OpFindAll, OpFindAllWithIDs:
		return true
	}
	return false
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
