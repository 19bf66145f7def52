package accessor

import (
	"fmt"
	"strings"
)

// Flags selects which members are eligible for compilation
type Flags uint8

const (
	// Instance admits members that belong to a receiver
	Instance Flags = 1 << iota
	// Static admits members registered against the owner type itself
	Static
	// Public admits exported members
	Public
	// NonPublic admits unexported members
	NonPublic
)

const (
	AnyVisibility         = Public | NonPublic
	InstancePublic        = Instance | Public
	InstanceAnyVisibility = Instance | AnyVisibility
	StaticPublic          = Static | Public
	StaticAnyVisibility   = Static | AnyVisibility
)

// Has reports whether every bit of mask is set
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

var flagNames = []struct {
	flag Flags
	name string
}{
	{Instance, "Instance"},
	{Static, "Static"},
	{Public, "Public"},
	{NonPublic, "NonPublic"},
}

func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			parts = append(parts, fn.name)
			f &^= fn.flag
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(f)))
	}
	return strings.Join(parts, "|")
}

// Op is the operation an accessor performs
type Op uint8

const (
	Get Op = iota
	Set
)

func (op Op) String() string {
	switch op {
	case Get:
		return "get"
	case Set:
		return "set"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Shape is the calling convention of a compiled accessor
type Shape uint8

const (
	InstanceGetter Shape = iota
	InstanceSetter
	StaticGetter
	StaticSetter
)

func (s Shape) String() string {
	switch s {
	case InstanceGetter:
		return "instance getter"
	case InstanceSetter:
		return "instance setter"
	case StaticGetter:
		return "static getter"
	case StaticSetter:
		return "static setter"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

func shapeOf(static bool, op Op) Shape {
	switch {
	case static && op == Set:
		return StaticSetter
	case static:
		return StaticGetter
	case op == Set:
		return InstanceSetter
	default:
		return InstanceGetter
	}
}
