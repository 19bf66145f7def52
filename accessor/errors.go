package accessor

import (
	"fmt"
	"reflect"

	"fastflect/catalog"
)

// MemberAccessError reports an access mode or operation that does not fit the member.
// It is a usage error and never becomes a cache entry.
type MemberAccessError struct {
	Member catalog.MemberID
	Mode   Flags
	Op     Op
	Reason string
}

func (e *MemberAccessError) Error() string {
	return fmt.Sprintf("cannot %s %s with %s: %s", e.Op, e.Member, e.Mode, e.Reason)
}

// TypeMismatchError reports a value or receiver whose type does not fit its slot
type TypeMismatchError struct {
	Member   catalog.MemberID
	Slot     string // "value" or "receiver"
	Expected reflect.Type
	Actual   reflect.Type
}

func (e *TypeMismatchError) Error() string {
	actual := "nil"
	if e.Actual != nil {
		actual = e.Actual.String()
	}
	return fmt.Sprintf("type mismatch for %s %s: expected %s, got %s", e.Member, e.Slot, e.Expected, actual)
}

// NullReceiverError reports an instance accessor invoked without a usable receiver
type NullReceiverError struct {
	Member catalog.MemberID
	// Path names the embedded pointer that was nil, empty when the receiver itself was
	Path string
}

func (e *NullReceiverError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("nil receiver for %s: embedded %s is nil", e.Member, e.Path)
	}
	return fmt.Sprintf("nil receiver for %s", e.Member)
}
