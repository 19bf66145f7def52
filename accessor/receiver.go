package accessor

import (
	"reflect"
	"strings"

	"fastflect/catalog"
)

// assignValue checks value against a slot of type t the way assignment would.
// Untyped nil stands for the zero value of nillable types.
func assignValue(t reflect.Type, value any) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(value)
	if rv.Type() != t && !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}

func valueMismatch(m *catalog.Member, value any) error {
	return &TypeMismatchError{
		Member:   m.ID(),
		Slot:     "value",
		Expected: m.Type,
		Actual:   reflect.TypeOf(value),
	}
}

// receiverBinder resolves obj to owner storage for one compiled member
type receiverBinder struct {
	id      catalog.MemberID
	owner   reflect.Type
	ptrType reflect.Type
}

func newReceiverBinder(m *catalog.Member) receiverBinder {
	return receiverBinder{id: m.ID(), owner: m.Owner, ptrType: reflect.PointerTo(m.Owner)}
}

func (b receiverBinder) mismatch(obj any) error {
	return &TypeMismatchError{Member: b.id, Slot: "receiver", Expected: b.ptrType, Actual: reflect.TypeOf(obj)}
}

// pointer returns obj as a non-nil *Owner; setters need one so writes reach the caller
func (b receiverBinder) pointer(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, &NullReceiverError{Member: b.id}
	}
	rv := reflect.ValueOf(obj)
	if rv.Type() != b.ptrType {
		return reflect.Value{}, b.mismatch(obj)
	}
	if rv.IsNil() {
		return reflect.Value{}, &NullReceiverError{Member: b.id}
	}
	return rv, nil
}

// addressable returns a *Owner for obj, copying a receiver passed by value
func (b receiverBinder) addressable(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, &NullReceiverError{Member: b.id}
	}
	rv := reflect.ValueOf(obj)
	switch rv.Type() {
	case b.ptrType:
		if rv.IsNil() {
			return reflect.Value{}, &NullReceiverError{Member: b.id}
		}
		return rv, nil
	case b.owner:
		cp := reflect.New(b.owner)
		cp.Elem().Set(rv)
		return cp, nil
	default:
		return reflect.Value{}, b.mismatch(obj)
	}
}

// value returns obj as an Owner value, dereferencing a pointer receiver
func (b receiverBinder) value(obj any) (reflect.Value, error) {
	if obj == nil {
		return reflect.Value{}, &NullReceiverError{Member: b.id}
	}
	rv := reflect.ValueOf(obj)
	switch rv.Type() {
	case b.owner:
		return rv, nil
	case b.ptrType:
		if rv.IsNil() {
			return reflect.Value{}, &NullReceiverError{Member: b.id}
		}
		return rv.Elem(), nil
	default:
		return reflect.Value{}, b.mismatch(obj)
	}
}

// walk follows an index path from an addressable struct, stopping at nil embedded pointers
func (b receiverBinder) walk(v reflect.Value, index []int, embedded []string) (reflect.Value, error) {
	for i, idx := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, &NullReceiverError{Member: b.id, Path: strings.Join(embedded[:i], ".")}
			}
			v = v.Elem()
		}
		v = v.Field(idx)
	}
	return v, nil
}

// reach checks every pointer or interface on an embedded path from v for nil.
// embedded names each step, the last one included.
func (b receiverBinder) reach(v reflect.Value, index []int, embedded []string) error {
	for i, idx := range index {
		v = v.Field(idx)
		switch v.Kind() {
		case reflect.Pointer, reflect.Interface:
			if v.IsNil() {
				return &NullReceiverError{Member: b.id, Path: strings.Join(embedded[:i+1], ".")}
			}
			if v.Kind() == reflect.Pointer {
				v = v.Elem()
			}
		}
	}
	return nil
}
