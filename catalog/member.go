package catalog

import (
	"fmt"
	"reflect"
)

// MemberKind distinguishes struct fields from getter/setter properties
type MemberKind int

const (
	Field MemberKind = iota
	Property
)

func (k MemberKind) String() string {
	switch k {
	case Field:
		return "field"
	case Property:
		return "property"
	default:
		return fmt.Sprintf("MemberKind(%d)", int(k))
	}
}

// Visibility follows the Go export rule for the member's name
type Visibility int

const (
	Exported Visibility = iota
	Unexported
)

func (v Visibility) String() string {
	if v == Unexported {
		return "unexported"
	}
	return "exported"
}

// MemberID identifies a member independently of the descriptor that carries it.
// Two descriptors resolved for the same member always have equal IDs.
type MemberID struct {
	Owner  reflect.Type
	Name   string
	Static bool
}

func (id MemberID) String() string {
	owner := "<nil>"
	if id.Owner != nil {
		owner = id.Owner.String()
	}
	if id.Static {
		return owner + "::" + id.Name
	}
	return owner + "." + id.Name
}

// Member describes a single field or property of an owner struct type.
// Descriptors are immutable once resolved and may be shared freely.
type Member struct {
	Owner      reflect.Type
	Name       string
	Kind       MemberKind
	Type       reflect.Type
	Static     bool
	Visibility Visibility
	Tags       map[string]string

	// Field storage. Offset is only meaningful when ThroughPointer is false.
	// For a promoted property, Index leads to the embedded field declaring it.
	Index          []int
	Offset         uintptr
	ThroughPointer bool
	embedded       []string

	// Instance property methods. Getter comes from the value method set when
	// the receiver is T, otherwise from *T; Setter always from *T.
	Getter           reflect.Method
	GetterOnPointer  bool
	Setter           reflect.Method
	HasSetter        bool
	SetterReturnsErr bool

	// Static storage: pointer to a package-level variable, or getter/setter funcs
	Var       reflect.Value
	StaticGet reflect.Value
	StaticSet reflect.Value
}

// ID names the member independently of the catalog that resolved it
func (m *Member) ID() MemberID {
	return MemberID{Owner: m.Owner, Name: m.Name, Static: m.Static}
}

// ReadOnly reports whether the member cannot be written
func (m *Member) ReadOnly() bool {
	switch {
	case m.Kind == Field:
		return false
	case m.Static:
		return !m.StaticSet.IsValid()
	default:
		return !m.HasSetter
	}
}

// Exported reports whether the member is visible outside its package
func (m *Member) Exported() bool {
	return m.Visibility == Exported
}

// Embedded names the embedded fields crossed to reach a promoted field, or
// the fields leading to the one that declares a promoted property
func (m *Member) Embedded() []string {
	return m.embedded
}

func (m *Member) String() string {
	if m == nil {
		return "<nil member>"
	}
	return fmt.Sprintf("%s (%s %s)", m.ID(), m.Kind, m.Type)
}

// Summary is a flattened, printable view of a descriptor
type Summary struct {
	Owner      string            `yaml:"owner"`
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"`
	Type       string            `yaml:"type"`
	Static     bool              `yaml:"static"`
	Visibility string            `yaml:"visibility"`
	ReadOnly   bool              `yaml:"read_only"`
	Index      []int             `yaml:"index,omitempty"`
	Embedded   []string          `yaml:"embedded,omitempty"`
	Tags       map[string]string `yaml:"tags,omitempty"`
}

// Summarize flattens the descriptor for display
func (m *Member) Summarize() Summary {
	return Summary{
		Owner:      m.Owner.String(),
		Name:       m.Name,
		Kind:       m.Kind.String(),
		Type:       m.Type.String(),
		Static:     m.Static,
		Visibility: m.Visibility.String(),
		ReadOnly:   m.ReadOnly(),
		Index:      m.Index,
		Embedded:   m.embedded,
		Tags:       m.Tags,
	}
}
