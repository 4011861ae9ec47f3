// Package introspect discovers and caches the reflective shape of struct
// types: the ordered list of their fields (own fields first, then fields
// promoted from embedded structs) and the list of their getter-shaped
// methods. The results are cached per type, since a type's shape cannot
// change at runtime, and both lookups are safe for concurrent use.
package introspect

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/puzpuzpuz/xsync/v3"
)

// Field describes a single struct field, including unexported ones.
type Field struct {
	// Name is the Go field name.
	Name string

	// Alias is the explicit name override taken from the `json` struct tag,
	// or "" when the tag is absent, empty, or "-".
	Alias string

	// Index is the index path of the field relative to the owning type,
	// usable with reflect.Value.FieldByIndex.
	Index []int

	// Type is the declared field type.
	Type reflect.Type

	// Exported reports whether the field is directly accessible.
	Exported bool
}

// Getter describes a zero-argument accessor method with a single result.
// Methods named GetXxx qualify, as do IsXxx methods with a bool result.
type Getter struct {
	// Name is the method name, e.g. "GetTitle".
	Name string

	// Property is the logical property name derived from the method name
	// by lowering the first letter after the prefix, e.g. "title".
	Property string

	// Type is the method's result type.
	Type reflect.Type
}

// typeShape is the cached introspection result for one struct type.
type typeShape struct {
	fields  []Field
	getters []Getter
}

// shapes caches typeShape per struct type. A lost race computes the shape
// twice; both results are identical so either may win.
var shapes = xsync.NewMapOf[reflect.Type, *typeShape]()

// FieldsOf returns the fields of t in declaration order, with fields of
// embedded structs appended after the embedding type's own fields. Pointer
// types are dereferenced first. Non-struct types yield nil.
func FieldsOf(t reflect.Type) []Field {
	s := shapeOf(t)
	if s == nil {
		return nil
	}
	return s.fields
}

// GettersOf returns the getter-shaped methods of t's pointer method set,
// so accessors with either value or pointer receivers are included.
// Pointer types are dereferenced first. Non-struct types yield nil.
func GettersOf(t reflect.Type) []Getter {
	s := shapeOf(t)
	if s == nil {
		return nil
	}
	return s.getters
}

func shapeOf(t reflect.Type) *typeShape {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	shape, _ := shapes.LoadOrCompute(t, func() *typeShape {
		return &typeShape{
			fields:  collectFields(t, nil),
			getters: collectGetters(t),
		}
	})
	return shape
}

// collectFields walks t's own fields first, then recurses into embedded
// structs, mirroring a class-then-superclass field walk.
func collectFields(t reflect.Type, prefix []int) []Field {
	var fields []Field
	var embedded []reflect.StructField

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		if sf.Anonymous && deref(sf.Type).Kind() == reflect.Struct {
			embedded = append(embedded, sf)
			continue
		}
		index := append(append([]int(nil), prefix...), i)
		fields = append(fields, Field{
			Name:     sf.Name,
			Alias:    tagAlias(sf),
			Index:    index,
			Type:     sf.Type,
			Exported: sf.IsExported(),
		})
	}

	for _, sf := range embedded {
		et := deref(sf.Type)
		nested := append(append([]int(nil), prefix...), sf.Index[0])
		fields = append(fields, collectFields(et, nested)...)
	}
	return fields
}

// collectGetters scans the pointer method set of t for accessor-shaped
// methods: exported, no parameters, exactly one result.
func collectGetters(t reflect.Type) []Getter {
	pt := reflect.PointerTo(t)
	var getters []Getter

	for i := 0; i < pt.NumMethod(); i++ {
		m := pt.Method(i)
		if !m.IsExported() {
			continue
		}
		// Method expressions include the receiver as the first input.
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		out := m.Type.Out(0)
		prop, ok := propertyName(m.Name, out)
		if !ok {
			continue
		}
		getters = append(getters, Getter{
			Name:     m.Name,
			Property: prop,
			Type:     out,
		})
	}
	return getters
}

// propertyName derives the logical property name from an accessor method
// name, accepting the Is prefix only for bool results.
func propertyName(method string, result reflect.Type) (string, bool) {
	switch {
	case strings.HasPrefix(method, "Get") && len(method) > 3:
		return LowerFirst(method[3:]), true
	case strings.HasPrefix(method, "Is") && len(method) > 2 && result.Kind() == reflect.Bool:
		return LowerFirst(method[2:]), true
	}
	return "", false
}

func tagAlias(sf reflect.StructField) string {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return ""
	}
	return name
}

func deref(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// LowerFirst lowers the first rune of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst raises the first rune of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
