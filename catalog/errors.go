package catalog

import (
	"fmt"
	"reflect"
)

// MemberNotFoundError is returned when an owner type has no member with the requested name
type MemberNotFoundError struct {
	Owner reflect.Type
	Name  string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member %q not found on %s", e.Name, typeString(e.Owner))
}

// DuplicateMemberError is returned when a static registration collides with an existing member
type DuplicateMemberError struct {
	Owner reflect.Type
	Name  string
}

func (e *DuplicateMemberError) Error() string {
	return fmt.Sprintf("member %q already defined on %s", e.Name, typeString(e.Owner))
}

// InvalidOwnerError is returned when members are requested for something that is not a struct type
type InvalidOwnerError struct {
	Type reflect.Type
}

func (e *InvalidOwnerError) Error() string {
	if e.Type == nil {
		return "invalid owner: nil type"
	}
	return fmt.Sprintf("invalid owner %s: members can only be resolved on struct types", e.Type)
}

// InvalidStaticError reports a malformed static member registration
type InvalidStaticError struct {
	Owner   reflect.Type
	Name    string
	Message string
}

func (e *InvalidStaticError) Error() string {
	return fmt.Sprintf("invalid static member %s::%s: %s", typeString(e.Owner), e.Name, e.Message)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
