package accessor

import (
	"reflect"

	"fastflect/catalog"
)

func compileStaticGetter(m *catalog.Member) StaticGetFunc {
	if m.Kind == catalog.Field {
		slot := m.Var.Elem()
		return func() (any, error) {
			return slot.Interface(), nil
		}
	}

	fn := m.StaticGet
	return func() (any, error) {
		return fn.Call(nil)[0].Interface(), nil
	}
}

func compileStaticSetter(m *catalog.Member) StaticSetFunc {
	valueType := m.Type

	if m.Kind == catalog.Field {
		slot := m.Var.Elem()
		return func(value any) error {
			nv, ok := assignValue(valueType, value)
			if !ok {
				return valueMismatch(m, value)
			}
			slot.Set(nv)
			return nil
		}
	}

	fn := m.StaticSet
	returnsErr := m.SetterReturnsErr
	return func(value any) error {
		nv, ok := assignValue(valueType, value)
		if !ok {
			return valueMismatch(m, value)
		}
		out := fn.Call([]reflect.Value{nv})
		if returnsErr {
			return callError(out[0])
		}
		return nil
	}
}
