// Package accessor compiles and caches direct get/set functions for struct
// members whose identity is only known at runtime.
//
// # Compiling
//
// A member descriptor comes from the catalog package. Compile turns it into
// an *Accessor for one access mode and one operation:
//
//	m, err := catalog.ResolveFor[Person]("Age")
//	set, err := accessor.Compile(m, accessor.InstanceAnyVisibility, accessor.Set)
//	get, err := accessor.Compile(m, accessor.InstanceAnyVisibility, accessor.Get)
//
//	p := &Person{}
//	err = set.Set(p, 42)
//	age, err := get.Get(p) // 42
//
// All metadata work (index paths, field offsets, method values) happens at
// compile time. An accessor never looks a member up by name again, and it holds
// no receiver, so one accessor serves every instance of the owner type and is
// safe for concurrent use.
//
// An Accessor is one of four shapes, fixed when it is compiled:
//
//   - InstanceGetter: GetFunc, func(obj any) (any, error)
//   - InstanceSetter: SetFunc, func(obj, value any) error
//   - StaticGetter:   StaticGetFunc, func() (any, error)
//   - StaticSetter:   StaticSetFunc, func(value any) error
//
// # Caching
//
// Cache.GetOrCompile keys accessors by member descriptor, access mode and
// operation. The first successful compilation for a key is stored and returned
// to every later caller; failures are never stored. Entries live as long as the
// cache does. Callers that need isolation (tests, plugins) create their own
// Cache; everyone else can use the package-level GetOrCompile.
//
// # Errors
//
//   - *MemberAccessError: the mode or operation does not fit the member
//     (reported by Compile)
//   - *TypeMismatchError: a setter received a value that is not assignable to
//     the member, or a receiver of the wrong type (reported by the accessor)
//   - *NullReceiverError: an instance accessor received nil, a nil pointer, or
//     a receiver whose embedded pointer on the field path is nil
package accessor
