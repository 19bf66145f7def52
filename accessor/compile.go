package accessor

import (
	"fastflect/catalog"
)

// Compile builds an accessor for member m under mode, performing op.
// It validates shape only; receivers and values are checked when the accessor runs.
func Compile(m *catalog.Member, mode Flags, op Op) (*Accessor, error) {
	if m == nil {
		return nil, &MemberAccessError{Mode: mode, Op: op, Reason: "nil member descriptor"}
	}
	if err := checkEligible(m, mode, op); err != nil {
		return nil, err
	}

	a := &Accessor{member: m, mode: mode, shape: shapeOf(m.Static, op)}

	switch a.shape {
	case InstanceGetter:
		if m.Kind == catalog.Field {
			a.get = compileFieldGetter(m)
		} else {
			a.get = compilePropertyGetter(m)
		}
	case InstanceSetter:
		if m.Kind == catalog.Field {
			a.set = compileFieldSetter(m)
		} else {
			a.set = compilePropertySetter(m)
		}
	case StaticGetter:
		a.staticGet = compileStaticGetter(m)
	case StaticSetter:
		a.staticSet = compileStaticSetter(m)
	}

	return a, nil
}

// checkEligible rejects modes and operations the member cannot satisfy
func checkEligible(m *catalog.Member, mode Flags, op Op) error {
	deny := func(reason string) error {
		return &MemberAccessError{Member: m.ID(), Mode: mode, Op: op, Reason: reason}
	}

	if op != Get && op != Set {
		return deny("unknown operation")
	}
	if m.Owner == nil || m.Type == nil {
		return deny("incomplete member descriptor")
	}

	switch {
	case m.Static && !mode.Has(Static):
		return deny("static member requires the Static flag")
	case !m.Static && !mode.Has(Instance):
		return deny("instance member requires the Instance flag")
	case m.Exported() && !mode.Has(Public):
		return deny("exported member is outside a non-public scope")
	case !m.Exported() && !mode.Has(NonPublic):
		return deny("unexported member is outside a public scope")
	}

	if op == Set && m.ReadOnly() {
		return deny("member has no setter")
	}

	switch {
	case m.Static && m.Kind == catalog.Field && !m.Var.IsValid():
		return deny("static field has no storage")
	case m.Static && m.Kind == catalog.Property && !m.StaticGet.IsValid():
		return deny("static property has no getter")
	case !m.Static && m.Kind == catalog.Property && !m.Getter.Func.IsValid():
		return deny("property has no getter")
	}

	return nil
}
