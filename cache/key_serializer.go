package cache

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// KeySeparator delimits cache key segments. Operation prefixes end with it,
// which is what makes prefix-based invalidation safe: "FindOne::1" never
// collides with "FindOne::10"'s prefix because both keys continue with the
// separator or end.
const KeySeparator = "::"

// defaultKeySerializer derives deterministic key segments from arbitrary
// argument values using reflection, falling back to JSON for anything it
// does not handle structurally.
type defaultKeySerializer struct{}

// NewDefaultKeySerializer creates the default key serializer.
func NewDefaultKeySerializer() KeySerializer {
	return &defaultKeySerializer{}
}

// SerializeKey builds a cache key from the operation name and arguments.
func (s *defaultKeySerializer) SerializeKey(op string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, op)
	for _, arg := range args {
		parts = append(parts, s.segment(arg))
	}
	return strings.Join(parts, KeySeparator)
}

func (s *defaultKeySerializer) segment(v any) string {
	if v == nil {
		return "nil"
	}
	return s.value(reflect.ValueOf(v))
}

func (s *defaultKeySerializer) value(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "nil"
		}
		return s.value(rv.Elem())
	case reflect.Slice:
		if rv.IsNil() {
			return "slice:nil"
		}
		return s.sequence("slice", rv)
	case reflect.Array:
		return s.sequence("array", rv)
	case reflect.Map:
		if rv.IsNil() {
			return "map:nil"
		}
		return s.mapping(rv)
	case reflect.Struct:
		return s.structure(rv)
	case reflect.Func, reflect.Chan:
		return fmt.Sprintf("%s:%p", rv.Kind(), rv.Interface())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return fmt.Sprintf("%v", rv.Interface())
	default:
		return s.jsonFallback(rv)
	}
}

func (s *defaultKeySerializer) sequence(kind string, rv reflect.Value) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = s.value(rv.Index(i))
	}
	return fmt.Sprintf("%s[%d]:{%s}", kind, len(parts), strings.Join(parts, ","))
}

// mapping serializes map entries sorted by key segment for determinism.
func (s *defaultKeySerializer) mapping(rv reflect.Value) string {
	pairs := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		pairs = append(pairs, s.value(iter.Key())+"="+s.value(iter.Value()))
	}
	sort.Strings(pairs)
	return fmt.Sprintf("map[%d]:{%s}", len(pairs), strings.Join(pairs, ","))
}

func (s *defaultKeySerializer) structure(rv reflect.Value) string {
	rt := rv.Type()
	parts := make([]string, 0, rv.NumField())
	for i := 0; i < rv.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		parts = append(parts, f.Name+":"+s.value(rv.Field(i)))
	}
	return fmt.Sprintf("struct:{%s}", strings.Join(parts, ","))
}

func (s *defaultKeySerializer) jsonFallback(rv reflect.Value) string {
	data, err := json.Marshal(rv.Interface())
	if err != nil {
		return "fallback:" + rv.Type().String()
	}
	return "json:" + string(data)
}
