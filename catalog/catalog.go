package catalog

import (
	"reflect"
	"sort"
	"sync"
)

// Catalog resolves member descriptors for struct types. Instance members are
// extracted by reflection the first time a type is seen and reused afterwards;
// static members exist only once registered.
type Catalog struct {
	mu      sync.RWMutex
	types   map[reflect.Type]*typeMembers
	statics map[reflect.Type]map[string]*Member
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		types:   make(map[reflect.Type]*typeMembers),
		statics: make(map[reflect.Type]map[string]*Member),
	}
}

// Resolve returns the descriptor for the named member of owner.
// Pointer owners are dereferenced to their struct type.
func (c *Catalog) Resolve(owner reflect.Type, name string) (*Member, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return nil, err
	}

	if m, ok := c.members(owner).lookup(name); ok {
		return m, nil
	}

	c.mu.RLock()
	m, ok := c.statics[owner][name]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	return nil, &MemberNotFoundError{Owner: owner, Name: name}
}

// Members lists every instance and static member of owner ordered by name,
// instance members first
func (c *Catalog) Members(owner reflect.Type) ([]*Member, error) {
	owner, err := normalizeOwner(owner)
	if err != nil {
		return nil, err
	}

	tm := c.members(owner)
	result := make([]*Member, 0, len(tm.fields)+len(tm.properties))
	for name := range tm.fields {
		if m, _ := tm.lookup(name); m.Kind == Field {
			result = append(result, m)
		}
	}
	for _, m := range tm.properties {
		result = append(result, m)
	}

	c.mu.RLock()
	statics := make([]*Member, 0, len(c.statics[owner]))
	for _, m := range c.statics[owner] {
		statics = append(statics, m)
	}
	c.mu.RUnlock()

	sortByName(result)
	sortByName(statics)
	return append(result, statics...), nil
}

// Browse returns the names of all owner types the catalog knows about
func (c *Catalog) Browse() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{}, len(c.types)+len(c.statics))
	for t := range c.types {
		seen[t.String()] = struct{}{}
	}
	for t := range c.statics {
		seen[t.String()] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset forgets extracted types and registered statics
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.types = make(map[reflect.Type]*typeMembers)
	c.statics = make(map[reflect.Type]map[string]*Member)
}

// members returns the cached instance members of owner, extracting them on first use
func (c *Catalog) members(owner reflect.Type) *typeMembers {
	c.mu.RLock()
	if cached, exists := c.types[owner]; exists {
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	extracted := extractMembers(owner)

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another caller may have stored first; keep theirs so descriptors stay unique
	if cached, exists := c.types[owner]; exists {
		return cached
	}
	c.types[owner] = extracted
	return extracted
}

func normalizeOwner(owner reflect.Type) (reflect.Type, error) {
	if owner == nil {
		return nil, &InvalidOwnerError{}
	}
	if owner.Kind() == reflect.Pointer {
		owner = owner.Elem()
	}
	if owner.Kind() != reflect.Struct {
		return nil, &InvalidOwnerError{Type: owner}
	}
	return owner, nil
}

func sortByName(members []*Member) {
	sort.Slice(members, func(i, j int) bool {
		return members[i].Name < members[j].Name
	})
}

// Global catalog - reflect once, use everywhere
var defaultCatalog = New()

// Default returns the process-wide catalog used by the package-level functions
func Default() *Catalog {
	return defaultCatalog
}

// Resolve resolves a member on the default catalog
func Resolve(owner reflect.Type, name string) (*Member, error) {
	return defaultCatalog.Resolve(owner, name)
}

// ResolveFor resolves a member of T on the default catalog
func ResolveFor[T any](name string) (*Member, error) {
	return defaultCatalog.Resolve(reflect.TypeFor[T](), name)
}

// Members lists the members of owner on the default catalog
func Members(owner reflect.Type) ([]*Member, error) {
	return defaultCatalog.Members(owner)
}

// Browse lists the owner types known to the default catalog
func Browse() []string {
	return defaultCatalog.Browse()
}
