package accessor

import (
	"errors"
	"reflect"
	"testing"

	"fastflect/catalog"
)

type Address struct {
	City string
	zip  string
}

type Person struct {
	Name     string
	Age      int
	Tags     []string
	Notes    any
	Friend   *Person
	nickname string
	email    string
	*Address
}

func (p *Person) Email() string {
	return p.email
}

func (p *Person) SetEmail(email string) error {
	if email == "" {
		return errBlankEmail
	}
	p.email = email
	return nil
}

// Initial has no setter and a value receiver
func (p Person) Initial() string {
	if p.Name == "" {
		return ""
	}
	return p.Name[:1]
}

var errBlankEmail = errors.New("email must not be blank")

type Registry struct{}

var (
	registryCounter int
	registryLabel   = "primary"
	registryLimit   = 10
)

type Stranger struct {
	Age int
}

type Settings struct {
	level int
	mode  string
}

func (s *Settings) Level() int {
	return s.level
}

func (s *Settings) SetLevel(level int) {
	s.level = level
}

func (s Settings) Mode() string {
	return s.mode
}

func (s *Settings) Title() string {
	return "settings"
}

// Team reaches Settings' properties through an embedded pointer
type Team struct {
	Name string
	*Settings
}

// Title shadows the promoted Settings.Title
func (t *Team) Title() string {
	return "team " + t.Name
}

// newCatalog returns an isolated catalog with the Registry statics registered
func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	registryType := reflect.TypeFor[Registry]()
	if err := c.RegisterStaticProperty(registryType, "Counter",
		func() int { return registryCounter },
		func(v int) { registryCounter = v }); err != nil {
		t.Fatalf("Failed to register Counter: %v", err)
	}
	if err := c.RegisterStaticVar(registryType, "Label", &registryLabel); err != nil {
		t.Fatalf("Failed to register Label: %v", err)
	}
	if err := c.RegisterStaticProperty(registryType, "Limit", func() int { return registryLimit }, nil); err != nil {
		t.Fatalf("Failed to register Limit: %v", err)
	}
	return c
}

func resolve[T any](t *testing.T, c *catalog.Catalog, name string) *catalog.Member {
	t.Helper()
	m, err := c.Resolve(reflect.TypeFor[T](), name)
	if err != nil {
		t.Fatalf("Failed to resolve %s: %v", name, err)
	}
	return m
}

func mustCompile(t *testing.T, m *catalog.Member, mode Flags, op Op) *Accessor {
	t.Helper()
	a, err := Compile(m, mode, op)
	if err != nil {
		t.Fatalf("Failed to compile %s %s: %v", op, m, err)
	}
	return a
}

func expectMemberAccessError(t *testing.T, err error) *MemberAccessError {
	t.Helper()
	var accessErr *MemberAccessError
	if !errors.As(err, &accessErr) {
		t.Fatalf("Expected MemberAccessError, got %v", err)
	}
	return accessErr
}
