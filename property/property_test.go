package property

import (
	"errors"
	"testing"
)

// bean exercises the resolution paths: exported fields, aliased fields,
// unexported fields behind accessors, and getter-only virtual properties.
type bean struct {
	Name    string `json:"name"`
	Legacy  string `json:"value"`
	Value   string
	secret  string
	archived bool
	virtual  int
}

func (b *bean) GetSecret() string     { return b.secret }
func (b *bean) SetSecret(v string)    { b.secret = v }
func (b *bean) IsArchived() bool      { return b.archived }
func (b *bean) SetArchived(v bool)    { b.archived = v }
func (b *bean) GetTotal() int         { return b.virtual }
func (b *bean) SetTotal(v int)        { b.virtual = v }

type hidden struct {
	locked string
}

func TestGet_exportedField(t *testing.T) {
	b := &bean{Name: "first"}
	got, err := Get(b, "name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "first" {
		t.Fatalf("Get = %v, want %q", got, "first")
	}
}

func TestGet_fieldByLiteralName(t *testing.T) {
	b := bean{Name: "by-alias"}
	got, err := Get(b, "Name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "by-alias" {
		t.Fatalf("Get = %v, want %q", got, "by-alias")
	}
}

func TestGet_aliasBeatsLiteralName(t *testing.T) {
	// Legacy is aliased to "value"; Value is literally named Value. The
	// alias pass runs over the whole field list first, so resolving
	// "value" must pick Legacy even though Value matches by name.
	b := bean{Legacy: "aliased", Value: "literal"}
	got, err := Get(b, "value")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "aliased" {
		t.Fatalf("Get(%q) = %v, want the aliased field", "value", got)
	}
}

func TestRoundTrip_unexportedFieldThroughAccessors(t *testing.T) {
	b := &bean{}
	if err := Set(b, "secret", "s3cret"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := Get(b, "secret")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("round trip = %v, want %q", got, "s3cret")
	}
}

func TestRoundTrip_boolFieldThroughIsAccessor(t *testing.T) {
	b := &bean{}
	if err := Set(b, "archived", true); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := Get(b, "archived")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != true {
		t.Fatalf("round trip = %v, want true", got)
	}
}

func TestRoundTrip_getterOnlyProperty(t *testing.T) {
	// "total" matches no field; it resolves through GetTotal/SetTotal.
	b := &bean{}
	if err := Set(b, "total", 41); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := Get(b, "total")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != 41 {
		t.Fatalf("round trip = %v, want 41", got)
	}
}

func TestSet_exportedField(t *testing.T) {
	b := &bean{}
	if err := Set(b, "name", "updated"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if b.Name != "updated" {
		t.Fatalf("Name = %q, want %q", b.Name, "updated")
	}
}

func TestInvalidArguments(t *testing.T) {
	b := &bean{}

	if _, err := Get(nil, "name"); !errors.Is(err, ErrNilTarget) {
		t.Errorf("Get(nil) err = %v, want ErrNilTarget", err)
	}
	if _, err := Get((*bean)(nil), "name"); !errors.Is(err, ErrNilTarget) {
		t.Errorf("Get(typed nil) err = %v, want ErrNilTarget", err)
	}
	if _, err := Get(b, ""); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Get(empty name) err = %v, want ErrEmptyName", err)
	}
	if err := Set(nil, "name", 1); !errors.Is(err, ErrNilTarget) {
		t.Errorf("Set(nil) err = %v, want ErrNilTarget", err)
	}
	if err := Set(b, "", 1); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Set(empty name) err = %v, want ErrEmptyName", err)
	}
	if err := Set(bean{}, "name", "x"); !errors.Is(err, ErrNotPointer) {
		t.Errorf("Set(value target) err = %v, want ErrNotPointer", err)
	}
}

func TestGet_unknownProperty(t *testing.T) {
	var nfe *NotFoundError
	_, err := Get(&bean{}, "missing")
	if !errors.As(err, &nfe) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nfe.Property != "missing" {
		t.Fatalf("NotFoundError.Property = %q, want %q", nfe.Property, "missing")
	}
}

func TestGet_unexportedFieldWithoutAccessor(t *testing.T) {
	var ae *AccessError
	_, err := Get(&hidden{locked: "x"}, "locked")
	if !errors.As(err, &ae) {
		t.Fatalf("err = %v, want AccessError", err)
	}
}

func TestSet_typeMismatch(t *testing.T) {
	var ie *InvokeError
	err := Set(&bean{}, "name", struct{}{})
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want InvokeError", err)
	}
	if ie.Unwrap() == nil {
		t.Fatal("InvokeError should carry a cause")
	}
}

func TestSet_nilIntoPointerField(t *testing.T) {
	type doc struct {
		Ref *string `json:"ref"`
	}
	s := "v"
	d := &doc{Ref: &s}
	if err := Set(d, "ref", nil); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if d.Ref != nil {
		t.Fatal("Ref should be nil after Set(nil)")
	}
}

func TestGet_nonStructTarget(t *testing.T) {
	var ae *AccessError
	v := 42
	if _, err := Get(&v, "x"); !errors.As(err, &ae) {
		t.Fatalf("err = %v, want AccessError", err)
	}
}
