// Package property reads and writes struct properties by logical name
// without compile-time knowledge of the target type.
//
// A property name is resolved against the target's fields first: one pass
// over the whole field list looking for an explicit alias match (the `json`
// struct tag), then a second pass matching the field name itself. Exported
// fields are accessed directly; unexported fields are reached through their
// conventional accessor methods (GetXxx/IsXxx and SetXxx). When no field
// matches, the getter methods themselves are scanned by their derived
// property names. Resolution is recomputed on every call; only the raw
// field and getter lists are cached, by package introspect.
package property

import (
	"fmt"
	"reflect"

	"github.com/goliatone/go-resource-adapter/introspect"
)

// Get returns the value of the named property on target.
func Get(target any, name string) (any, error) {
	rv, base, err := prepare(target, name)
	if err != nil {
		return nil, err
	}
	t := base.Type()

	if f, ok := findField(t, name); ok {
		if f.Exported {
			fv, err := base.FieldByIndexErr(f.Index)
			if err != nil {
				return nil, &InvokeError{Type: t, Property: name, Err: err}
			}
			return fv.Interface(), nil
		}
		m, ok := fieldGetter(rv, f)
		if !ok {
			return nil, &AccessError{Type: t, Property: name, Reason: "unexported field has no getter"}
		}
		return m.Call(nil)[0].Interface(), nil
	}

	g, ok := findGetter(t, name)
	if !ok {
		return nil, &NotFoundError{Type: t, Property: name}
	}
	m := rv.MethodByName(g.Name)
	if !m.IsValid() {
		return nil, &AccessError{Type: t, Property: name, Reason: g.Name + " requires a pointer target"}
	}
	return m.Call(nil)[0].Interface(), nil
}

// Set assigns value to the named property on target, which must be a
// non-nil pointer so the write is visible to the caller.
func Set(target any, name string, value any) error {
	rv, base, err := prepare(target, name)
	if err != nil {
		return err
	}
	if rv.Kind() != reflect.Pointer {
		return ErrNotPointer
	}
	t := base.Type()

	if f, ok := findField(t, name); ok {
		if f.Exported {
			fv, err := base.FieldByIndexErr(f.Index)
			if err != nil {
				return &InvokeError{Type: t, Property: name, Err: err}
			}
			return assign(t, name, fv, value)
		}
		m := rv.MethodByName("Set" + introspect.UpperFirst(f.Name))
		if !m.IsValid() || m.Type().NumIn() != 1 {
			return &AccessError{Type: t, Property: name, Reason: "unexported field has no setter"}
		}
		return call(t, name, m, value)
	}

	g, ok := findGetter(t, name)
	if !ok {
		return &NotFoundError{Type: t, Property: name}
	}
	m := rv.MethodByName("Set" + introspect.UpperFirst(g.Property))
	if !m.IsValid() || m.Type().NumIn() != 1 {
		return &AccessError{Type: t, Property: name, Reason: "no setter matching " + g.Name}
	}
	return call(t, name, m, value)
}

// prepare validates the arguments and unwraps target to its struct value.
func prepare(target any, name string) (rv, base reflect.Value, err error) {
	if target == nil {
		return rv, base, ErrNilTarget
	}
	if name == "" {
		return rv, base, ErrEmptyName
	}
	rv = reflect.ValueOf(target)
	base = rv
	for base.Kind() == reflect.Pointer {
		if base.IsNil() {
			return rv, base, ErrNilTarget
		}
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return rv, base, &AccessError{Type: rv.Type(), Property: name, Reason: "target is not a struct"}
	}
	return rv, base, nil
}

// findField scans the field list twice: alias matches win over literal name
// matches across the entire list, not per field.
func findField(t reflect.Type, name string) (introspect.Field, bool) {
	fields := introspect.FieldsOf(t)
	for _, f := range fields {
		if f.Alias == name {
			return f, true
		}
	}
	for _, f := range fields {
		if f.Name == name || introspect.LowerFirst(f.Name) == name {
			return f, true
		}
	}
	return introspect.Field{}, false
}

// findGetter matches getters by their derived property name. Go methods
// carry no tags, so there is no alias pass here.
func findGetter(t reflect.Type, name string) (introspect.Getter, bool) {
	for _, g := range introspect.GettersOf(t) {
		if g.Property == name {
			return g, true
		}
	}
	return introspect.Getter{}, false
}

// fieldGetter locates the conventional accessor for an unexported field:
// Get<Name>, or Is<Name> for bool fields.
func fieldGetter(rv reflect.Value, f introspect.Field) (reflect.Value, bool) {
	names := []string{"Get" + introspect.UpperFirst(f.Name)}
	if f.Type.Kind() == reflect.Bool {
		names = append(names, "Is"+introspect.UpperFirst(f.Name))
	}
	for _, n := range names {
		m := rv.MethodByName(n)
		if m.IsValid() && m.Type().NumIn() == 0 && m.Type().NumOut() == 1 {
			return m, true
		}
	}
	return reflect.Value{}, false
}

// assign writes value into the settable field fv, converting when needed.
func assign(t reflect.Type, name string, fv reflect.Value, value any) error {
	if !fv.CanSet() {
		return &AccessError{Type: t, Property: name, Reason: "field is not settable"}
	}
	vv, err := coerce(t, name, value, fv.Type())
	if err != nil {
		return err
	}
	fv.Set(vv)
	return nil
}

// call invokes a single-parameter setter with value.
func call(t reflect.Type, name string, m reflect.Value, value any) error {
	vv, err := coerce(t, name, value, m.Type().In(0))
	if err != nil {
		return err
	}
	m.Call([]reflect.Value{vv})
	return nil
}

// coerce adapts value to the expected type, allowing nil only for nilable kinds.
func coerce(t reflect.Type, name string, value any, want reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch want.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(want), nil
		}
		return reflect.Value{}, &InvokeError{Type: t, Property: name,
			Err: fmt.Errorf("cannot assign nil to %s", want)}
	}
	vv := reflect.ValueOf(value)
	switch {
	case vv.Type().AssignableTo(want):
		return vv, nil
	case vv.Type().ConvertibleTo(want):
		return vv.Convert(want), nil
	}
	return reflect.Value{}, &InvokeError{Type: t, Property: name,
		Err: fmt.Errorf("value of type %s is not assignable to %s", vv.Type(), want)}
}
