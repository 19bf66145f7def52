package catalog

import (
	"errors"
	"reflect"
	"testing"
)

type Settings struct{}

var (
	settingsRetries  = 3
	settingsEndpoint = "localhost"
)

func TestRegisterStaticVar(t *testing.T) {
	c := New()
	owner := reflect.TypeFor[Settings]()

	if err := c.RegisterStaticVar(owner, "Retries", &settingsRetries); err != nil {
		t.Fatalf("Failed to register Retries: %v", err)
	}

	m, err := c.Resolve(owner, "Retries")
	if err != nil {
		t.Fatalf("Failed to resolve Retries: %v", err)
	}
	if !m.Static || m.Kind != Field {
		t.Errorf("Expected static field, got %s", m)
	}
	if m.Type != reflect.TypeFor[int]() {
		t.Errorf("Expected int, got %s", m.Type)
	}
	if m.ReadOnly() {
		t.Error("Expected static field to be writable")
	}
	if m.Var.Elem().Interface() != 3 {
		t.Errorf("Expected storage to point at the variable, got %v", m.Var.Elem().Interface())
	}
}

func TestRegisterStaticProperty(t *testing.T) {
	c := New()
	owner := reflect.TypeFor[Settings]()

	err := c.RegisterStaticProperty(owner, "Endpoint",
		func() string { return settingsEndpoint },
		func(v string) error { settingsEndpoint = v; return nil })
	if err != nil {
		t.Fatalf("Failed to register Endpoint: %v", err)
	}
	if err := c.RegisterStaticProperty(owner, "version", func() int { return 1 }, nil); err != nil {
		t.Fatalf("Failed to register version: %v", err)
	}

	endpoint, _ := c.Resolve(owner, "Endpoint")
	if endpoint.ReadOnly() || !endpoint.SetterReturnsErr {
		t.Errorf("Expected writable property with an error-returning setter, got %+v", endpoint.Summarize())
	}

	version, _ := c.Resolve(owner, "version")
	if !version.ReadOnly() {
		t.Error("Expected property without setter to be read-only")
	}
	if version.Exported() {
		t.Error("Expected lower-case static to be unexported")
	}
}

func TestInvalidStaticRegistrations(t *testing.T) {
	owner := reflect.TypeFor[Settings]()
	var n int

	tests := []struct {
		name     string
		register func(c *Catalog) error
	}{
		{"nil storage", func(c *Catalog) error { return c.RegisterStaticVar(owner, "N", nil) }},
		{"non-pointer storage", func(c *Catalog) error { return c.RegisterStaticVar(owner, "N", n) }},
		{"empty name", func(c *Catalog) error { return c.RegisterStaticVar(owner, "", &n) }},
		{"nil getter", func(c *Catalog) error { return c.RegisterStaticProperty(owner, "P", nil, nil) }},
		{"getter with args", func(c *Catalog) error {
			return c.RegisterStaticProperty(owner, "P", func(int) int { return 0 }, nil)
		}},
		{"setter type mismatch", func(c *Catalog) error {
			return c.RegisterStaticProperty(owner, "P", func() int { return 0 }, func(string) {})
		}},
		{"setter returns value", func(c *Catalog) error {
			return c.RegisterStaticProperty(owner, "P", func() int { return 0 }, func(int) int { return 0 })
		}},
		{"setter not a func", func(c *Catalog) error {
			return c.RegisterStaticProperty(owner, "P", func() int { return 0 }, 5)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var invalid *InvalidStaticError
			if err := tt.register(New()); !errors.As(err, &invalid) {
				t.Errorf("Expected InvalidStaticError, got %v", err)
			}
		})
	}

	var ownerErr *InvalidOwnerError
	if err := New().RegisterStaticVar(reflect.TypeFor[string](), "N", &n); !errors.As(err, &ownerErr) {
		t.Errorf("Expected InvalidOwnerError, got %v", err)
	}
}

func TestDuplicateStatics(t *testing.T) {
	c := New()
	var n int

	if err := c.RegisterStaticVar(reflect.TypeFor[Settings](), "N", &n); err != nil {
		t.Fatalf("Failed to register N: %v", err)
	}

	var dup *DuplicateMemberError
	if err := c.RegisterStaticVar(reflect.TypeFor[Settings](), "N", &n); !errors.As(err, &dup) {
		t.Errorf("Expected DuplicateMemberError for repeated static, got %v", err)
	}
	if err := c.RegisterStaticVar(reflect.TypeFor[Account](), "Balance", &n); !errors.As(err, &dup) {
		t.Errorf("Expected DuplicateMemberError for instance field collision, got %v", err)
	}
	if err := c.RegisterStaticProperty(reflect.TypeFor[Account](), "Label", func() int { return n }, nil); !errors.As(err, &dup) {
		t.Errorf("Expected DuplicateMemberError for property collision, got %v", err)
	}
}

func TestGenericRegistrationUsesDefaultCatalog(t *testing.T) {
	t.Cleanup(Default().Reset)
	owner := reflect.TypeFor[Settings]()

	if err := RegisterStaticVar(owner, "Retries", &settingsRetries); err != nil {
		t.Fatalf("Failed to register Retries: %v", err)
	}
	if err := RegisterStaticProperty(owner, "Endpoint", func() string { return settingsEndpoint }, nil); err != nil {
		t.Fatalf("Failed to register Endpoint: %v", err)
	}

	m, err := Resolve(owner, "Endpoint")
	if err != nil {
		t.Fatalf("Failed to resolve on default catalog: %v", err)
	}
	if !m.ReadOnly() {
		t.Error("Expected nil setter to make the property read-only")
	}

	var invalid *InvalidStaticError
	if err := RegisterStaticVar[int](owner, "Nil", nil); !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidStaticError, got %v", err)
	}
	if err := RegisterStaticProperty[int](owner, "Nil", nil, nil); !errors.As(err, &invalid) {
		t.Errorf("Expected InvalidStaticError, got %v", err)
	}
}
