package accessor

import (
	"fastflect/catalog"
)

// GetFunc reads an instance member of obj
type GetFunc func(obj any) (any, error)

// SetFunc writes value into an instance member of obj, which must be a pointer
type SetFunc func(obj, value any) error

// StaticGetFunc reads a static member
type StaticGetFunc func() (any, error)

// StaticSetFunc writes a static member
type StaticSetFunc func(value any) error

// Accessor is a compiled get or set routine for one member. Exactly one of its
// functions is set, matching Shape. Accessors are immutable.
type Accessor struct {
	member *catalog.Member
	mode   Flags
	shape  Shape

	get       GetFunc
	set       SetFunc
	staticGet StaticGetFunc
	staticSet StaticSetFunc
}

// Member returns the descriptor the accessor was compiled for
func (a *Accessor) Member() *catalog.Member {
	return a.member
}

// Mode returns the flags the accessor was compiled with
func (a *Accessor) Mode() Flags {
	return a.mode
}

// Shape returns the calling convention of the accessor
func (a *Accessor) Shape() Shape {
	return a.shape
}

// Getter returns the instance getter, if that is the accessor's shape
func (a *Accessor) Getter() (GetFunc, bool) {
	return a.get, a.get != nil
}

// Setter returns the instance setter, if that is the accessor's shape
func (a *Accessor) Setter() (SetFunc, bool) {
	return a.set, a.set != nil
}

// StaticGetter returns the static getter, if that is the accessor's shape
func (a *Accessor) StaticGetter() (StaticGetFunc, bool) {
	return a.staticGet, a.staticGet != nil
}

// StaticSetter returns the static setter, if that is the accessor's shape
func (a *Accessor) StaticSetter() (StaticSetFunc, bool) {
	return a.staticSet, a.staticSet != nil
}

// Get invokes an instance getter
func (a *Accessor) Get(obj any) (any, error) {
	if a.get == nil {
		return nil, a.shapeError(InstanceGetter)
	}
	return a.get(obj)
}

// Set invokes an instance setter
func (a *Accessor) Set(obj, value any) error {
	if a.set == nil {
		return a.shapeError(InstanceSetter)
	}
	return a.set(obj, value)
}

// GetStatic invokes a static getter
func (a *Accessor) GetStatic() (any, error) {
	if a.staticGet == nil {
		return nil, a.shapeError(StaticGetter)
	}
	return a.staticGet()
}

// SetStatic invokes a static setter
func (a *Accessor) SetStatic(value any) error {
	if a.staticSet == nil {
		return a.shapeError(StaticSetter)
	}
	return a.staticSet(value)
}

func (a *Accessor) shapeError(want Shape) error {
	op := Get
	if want == InstanceSetter || want == StaticSetter {
		op = Set
	}
	return &MemberAccessError{
		Member: a.member.ID(),
		Mode:   a.mode,
		Op:     op,
		Reason: "accessor is a " + a.shape.String() + ", not a " + want.String(),
	}
}
