package accessor

import (
	"reflect"
	"unsafe"

	"fastflect/catalog"
)

// compileFieldGetter reads a field slot. When the index path stays inside the
// owner's own storage the slot is a fixed offset from the receiver address.
func compileFieldGetter(m *catalog.Member) GetFunc {
	bind := newReceiverBinder(m)
	fieldType := m.Type

	if !m.ThroughPointer {
		offset := m.Offset
		return func(obj any) (any, error) {
			ptr, err := bind.addressable(obj)
			if err != nil {
				return nil, err
			}
			slot := reflect.NewAt(fieldType, unsafe.Add(ptr.UnsafePointer(), offset)).Elem()
			return slot.Interface(), nil
		}
	}

	index, embedded := m.Index, m.Embedded()
	return func(obj any) (any, error) {
		ptr, err := bind.addressable(obj)
		if err != nil {
			return nil, err
		}
		f, err := bind.walk(ptr.Elem(), index, embedded)
		if err != nil {
			return nil, err
		}
		return exposed(f).Interface(), nil
	}
}

// compileFieldSetter writes a field slot through a pointer receiver
func compileFieldSetter(m *catalog.Member) SetFunc {
	bind := newReceiverBinder(m)
	fieldType := m.Type

	if !m.ThroughPointer {
		offset := m.Offset
		return func(obj, value any) error {
			ptr, err := bind.pointer(obj)
			if err != nil {
				return err
			}
			nv, ok := assignValue(fieldType, value)
			if !ok {
				return valueMismatch(m, value)
			}
			reflect.NewAt(fieldType, unsafe.Add(ptr.UnsafePointer(), offset)).Elem().Set(nv)
			return nil
		}
	}

	index, embedded := m.Index, m.Embedded()
	return func(obj, value any) error {
		ptr, err := bind.pointer(obj)
		if err != nil {
			return err
		}
		f, err := bind.walk(ptr.Elem(), index, embedded)
		if err != nil {
			return err
		}
		nv, ok := assignValue(fieldType, value)
		if !ok {
			return valueMismatch(m, value)
		}
		exposed(f).Set(nv)
		return nil
	}
}

// exposed strips the read-only mark reflect puts on unexported fields.
// f must be addressable.
func exposed(f reflect.Value) reflect.Value {
	if f.CanSet() {
		return f
	}
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
}
