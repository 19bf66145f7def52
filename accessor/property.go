package accessor

import (
	"reflect"

	"fastflect/catalog"
)

// compilePropertyGetter calls the getter's method expression captured at compile time
func compilePropertyGetter(m *catalog.Member) GetFunc {
	bind := newReceiverBinder(m)
	fn := m.Getter.Func
	promoted := promotedCheck(bind, m)

	if m.GetterOnPointer {
		return func(obj any) (any, error) {
			ptr, err := bind.addressable(obj)
			if err != nil {
				return nil, err
			}
			if err := promoted(ptr.Elem()); err != nil {
				return nil, err
			}
			return fn.Call([]reflect.Value{ptr})[0].Interface(), nil
		}
	}

	return func(obj any) (any, error) {
		recv, err := bind.value(obj)
		if err != nil {
			return nil, err
		}
		if err := promoted(recv); err != nil {
			return nil, err
		}
		return fn.Call([]reflect.Value{recv})[0].Interface(), nil
	}
}

// compilePropertySetter calls SetX on a pointer receiver, passing through its error
func compilePropertySetter(m *catalog.Member) SetFunc {
	bind := newReceiverBinder(m)
	fn := m.Setter.Func
	valueType := m.Type
	returnsErr := m.SetterReturnsErr
	promoted := promotedCheck(bind, m)

	return func(obj, value any) error {
		ptr, err := bind.pointer(obj)
		if err != nil {
			return err
		}
		if err := promoted(ptr.Elem()); err != nil {
			return err
		}
		nv, ok := assignValue(valueType, value)
		if !ok {
			return valueMismatch(m, value)
		}
		out := fn.Call([]reflect.Value{ptr, nv})
		if returnsErr {
			return callError(out[0])
		}
		return nil
	}
}

// promotedCheck rejects receivers whose embedded path to a promoted property is nil
func promotedCheck(bind receiverBinder, m *catalog.Member) func(reflect.Value) error {
	if !m.ThroughPointer {
		return func(reflect.Value) error { return nil }
	}
	index, embedded := m.Index, m.Embedded()
	return func(recv reflect.Value) error {
		return bind.reach(recv, index, embedded)
	}
}

func callError(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}
