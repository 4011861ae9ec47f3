package repositoryadapter

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Operation identifies one of the five resource operations an adapter
// exposes uniformly regardless of the wrapped method's exact signature.
type Operation string

const (
	OpFindOne        Operation = "findOne"
	OpFindAll        Operation = "findAll"
	OpFindAllWithIDs Operation = "findAllWithIDs"
	OpSave           Operation = "save"
	OpDelete         Operation = "delete"
)

// operations lists every operation in binding-table order.
var operations = [...]Operation{OpFindOne, OpFindAll, OpFindAllWithIDs, OpSave, OpDelete}

const numOperations = len(operations)

func opIndex(op Operation) int {
	for i, o := range operations {
		if o == op {
			return i
		}
	}
	return -1
}

// methodName is the shape of an exported Go method identifier. Reflection
// can only reach exported methods, so the marker rejects anything else.
var methodName = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// Marker is the capability table a repository declares about itself: which
// resource type it serves and which of its methods implement each
// operation. An empty method name means the operation is unsupported.
//
// Each operation maps to at most one method by construction, so the
// ambiguity of two methods claiming the same operation cannot arise. The
// same method may be named for more than one operation; each operation
// then gets its own argument plan.
type Marker struct {
	// Resource is a prototype value of the resource type, e.g. new(Task).
	Resource any

	FindOne        string
	FindAll        string
	FindAllWithIDs string
	Save           string
	Delete         string
}

// MarkedRepository is implemented by repositories that declare their
// operation markers. It is the only contract a repository must satisfy;
// the marked methods themselves are discovered reflectively.
type MarkedRepository interface {
	ResourceMarker() Marker
}

// Validate checks the marker's structural integrity.
func (m Marker) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Resource, validation.Required),
		validation.Field(&m.FindOne, validation.Match(methodName)),
		validation.Field(&m.FindAll, validation.Match(methodName)),
		validation.Field(&m.FindAllWithIDs, validation.Match(methodName)),
		validation.Field(&m.Save, validation.Match(methodName)),
		validation.Field(&m.Delete, validation.Match(methodName)),
	)
}

// methodFor returns the declared method name for op, or "".
func (m Marker) methodFor(op Operation) string {
	switch op {
	case OpFindOne:
		return m.FindOne
	case OpFindAll:
		return m.FindAll
	case OpFindAllWithIDs:
		return m.FindAllWithIDs
	case OpSave:
		return m.Save
	case OpDelete:
		return m.Delete
	}
	return ""
}
