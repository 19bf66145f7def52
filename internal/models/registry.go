package models

import (
	"reflect"
	"sync/atomic"

	"fastflect/catalog"
)

// Registry owns process-wide counters exposed as static members
type Registry struct{}

var (
	registryCounter int
	registryEvents  atomic.Int64
)

// Record bumps the event count
func Record() int64 {
	return registryEvents.Add(1)
}

// Register exposes the package-level state of the models as static members on c
func Register(c *catalog.Catalog) error {
	registryType := reflect.TypeFor[Registry]()
	if err := c.RegisterStaticVar(registryType, "Counter", &registryCounter); err != nil {
		return err
	}
	if err := c.RegisterStaticProperty(registryType, "Events", registryEvents.Load, nil); err != nil {
		return err
	}
	return c.RegisterStaticProperty(reflect.TypeFor[Company](), "DefaultDomain", DefaultDomain, SetDefaultDomain)
}

// Types lists the models by name for tooling
func Types() map[string]reflect.Type {
	return map[string]reflect.Type{
		"Root":     reflect.TypeFor[Root](),
		"Base":     reflect.TypeFor[Base](),
		"User":     reflect.TypeFor[User](),
		"Contact":  reflect.TypeFor[Contact](),
		"Company":  reflect.TypeFor[Company](),
		"Property": reflect.TypeFor[Property](),
		"Registry": reflect.TypeFor[Registry](),
	}
}
