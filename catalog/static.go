package catalog

import (
	"reflect"
)

// RegisterStaticVar exposes a package-level variable as a static field of owner.
// ptr must be a non-nil pointer to the variable.
func (c *Catalog) RegisterStaticVar(owner reflect.Type, name string, ptr any) error {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return err
	}

	pv := reflect.ValueOf(ptr)
	if !pv.IsValid() || pv.Kind() != reflect.Pointer || pv.IsNil() {
		return &InvalidStaticError{Owner: owner, Name: name, Message: "storage must be a non-nil pointer"}
	}

	return c.registerStatic(&Member{
		Owner:      owner,
		Name:       name,
		Kind:       Field,
		Type:       pv.Type().Elem(),
		Static:     true,
		Visibility: visibilityOf(name),
		Var:        pv,
	})
}

// RegisterStaticProperty exposes getter/setter functions as a static property of owner.
// get must be a func() T; set may be nil (read-only), func(T) or func(T) error.
func (c *Catalog) RegisterStaticProperty(owner reflect.Type, name string, get, set any) error {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return err
	}

	gv := reflect.ValueOf(get)
	if !gv.IsValid() || gv.Kind() != reflect.Func || gv.IsNil() {
		return &InvalidStaticError{Owner: owner, Name: name, Message: "getter must be a non-nil func() T"}
	}
	gt := gv.Type()
	if gt.NumIn() != 0 || gt.NumOut() != 1 {
		return &InvalidStaticError{Owner: owner, Name: name, Message: "getter must take no arguments and return one value"}
	}
	valueType := gt.Out(0)

	member := &Member{
		Owner:      owner,
		Name:       name,
		Kind:       Property,
		Type:       valueType,
		Static:     true,
		Visibility: visibilityOf(name),
		StaticGet:  gv,
	}

	if set != nil {
		sv := reflect.ValueOf(set)
		if sv.Kind() != reflect.Func || sv.IsNil() {
			return &InvalidStaticError{Owner: owner, Name: name, Message: "setter must be a func(T) or func(T) error"}
		}
		st := sv.Type()
		validOut := st.NumOut() == 0 || (st.NumOut() == 1 && st.Out(0) == errorType)
		if st.NumIn() != 1 || st.In(0) != valueType || !validOut {
			return &InvalidStaticError{Owner: owner, Name: name, Message: "setter must accept " + valueType.String() + " and return nothing or an error"}
		}
		member.StaticSet = sv
		member.SetterReturnsErr = st.NumOut() == 1
	}

	return c.registerStatic(member)
}

func (c *Catalog) registerStatic(member *Member) error {
	if member.Name == "" {
		return &InvalidStaticError{Owner: member.Owner, Name: member.Name, Message: "name must not be empty"}
	}

	// Names are unique per owner across instance and static members
	if _, exists := c.members(member.Owner).lookup(member.Name); exists {
		return &DuplicateMemberError{Owner: member.Owner, Name: member.Name}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	statics, ok := c.statics[member.Owner]
	if !ok {
		statics = make(map[string]*Member)
		c.statics[member.Owner] = statics
	}
	if _, exists := statics[member.Name]; exists {
		return &DuplicateMemberError{Owner: member.Owner, Name: member.Name}
	}
	statics[member.Name] = member
	return nil
}

// RegisterStaticVar registers a typed package-level variable on the default catalog
func RegisterStaticVar[T any](owner reflect.Type, name string, ptr *T) error {
	if ptr == nil {
		return &InvalidStaticError{Owner: owner, Name: name, Message: "storage must be a non-nil pointer"}
	}
	return defaultCatalog.RegisterStaticVar(owner, name, ptr)
}

// RegisterStaticProperty registers typed getter/setter funcs on the default catalog.
// A nil set makes the property read-only.
func RegisterStaticProperty[T any](owner reflect.Type, name string, get func() T, set func(T)) error {
	if get == nil {
		return &InvalidStaticError{Owner: owner, Name: name, Message: "getter must be a non-nil func() T"}
	}
	if set == nil {
		return defaultCatalog.RegisterStaticProperty(owner, name, get, nil)
	}
	return defaultCatalog.RegisterStaticProperty(owner, name, get, set)
}
