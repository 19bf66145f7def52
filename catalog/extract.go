package catalog

import (
	"go/token"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"fastflect/shared/logger"
)

var errorType = reflect.TypeFor[error]()

// typeMembers holds the instance members extracted from one struct type
type typeMembers struct {
	fields     map[string]*Member
	properties map[string]*Member
}

// lookup follows selector depth: a method on the owner hides a promoted field of the same name
func (tm *typeMembers) lookup(name string) (*Member, bool) {
	field, hasField := tm.fields[name]
	prop, hasProp := tm.properties[name]
	switch {
	case hasField && hasProp && len(field.Index) > 1:
		return prop, true
	case hasField:
		return field, true
	default:
		return prop, hasProp
	}
}

// extractMembers reflects over a struct type once, collecting fields and properties
func extractMembers(owner reflect.Type) *typeMembers {
	tm := &typeMembers{
		fields:     extractFields(owner),
		properties: extractProperties(owner),
	}

	logger.Debug("Extracted members",
		logger.String("owner", owner.String()),
		logger.Int("fields", len(tm.fields)),
		logger.Int("properties", len(tm.properties)))

	return tm
}

// extractFields walks every visible field, promoted fields of embedded structs included
func extractFields(owner reflect.Type) map[string]*Member {
	visible := reflect.VisibleFields(owner)
	fields := make(map[string]*Member, len(visible))

	for _, sf := range visible {
		// Blank fields can't be named
		if sf.Name == "_" {
			continue
		}

		member := &Member{
			Owner:      owner,
			Name:       sf.Name,
			Kind:       Field,
			Type:       sf.Type,
			Visibility: visibilityOf(sf.Name),
			Tags:       extractTags(sf),
			Index:      sf.Index,
		}
		member.Offset, member.ThroughPointer, member.embedded = walkIndex(owner, sf.Index)
		fields[sf.Name] = member
	}

	return fields
}

// walkIndex sums field offsets along an index path. Once the path crosses an
// embedded pointer the offset is no longer relative to the owner.
func walkIndex(owner reflect.Type, index []int) (uintptr, bool, []string) {
	var (
		offset     uintptr
		throughPtr bool
		embedded   []string
	)

	t := owner
	for i, idx := range index {
		sf := t.Field(idx)
		offset += sf.Offset
		if i == len(index)-1 {
			break
		}
		embedded = append(embedded, sf.Name)
		t = sf.Type
		if t.Kind() == reflect.Pointer {
			throughPtr = true
			t = t.Elem()
		}
	}

	return offset, throughPtr, embedded
}

// extractProperties pairs getter methods X() with optional setters SetX(v)
func extractProperties(owner reflect.Type) map[string]*Member {
	ptrType := reflect.PointerTo(owner)
	properties := make(map[string]*Member)

	for i := range ptrType.NumMethod() {
		method := ptrType.Method(i)
		if !isGetter(method) {
			continue
		}

		member := &Member{
			Owner:           owner,
			Name:            method.Name,
			Kind:            Property,
			Type:            method.Type.Out(0),
			Visibility:      Exported,
			Getter:          method,
			GetterOnPointer: true,
		}

		// Prefer the value receiver so getters can run on non-addressable receivers
		valueMethod, hasValue := owner.MethodByName(method.Name)
		if hasValue {
			member.Getter = valueMethod
			member.GetterOnPointer = false
		}

		// Promoted methods dereference the embedded fields on their path, so the
		// path is kept for nil checks like a promoted field's
		if !declared(owner, method.Name) {
			index, embedded, throughPtr := promotionPath(owner, method.Name)
			member.Index = index
			member.embedded = embedded
			member.ThroughPointer = throughPtr
		}

		if setter, ok := ptrType.MethodByName("Set" + method.Name); ok && isSetterFor(setter, member.Type) {
			member.Setter = setter
			member.HasSetter = true
			member.SetterReturnsErr = setter.Type.NumOut() == 1
		}

		properties[method.Name] = member
	}

	return properties
}

// promotionPath finds the shallowest embedded field whose type declares the
// named method. It reports the index path to that field, the embedded names
// along it, and whether any step is a pointer or interface that may be nil.
func promotionPath(owner reflect.Type, name string) ([]int, []string, bool) {
	type step struct {
		t          reflect.Type
		index      []int
		embedded   []string
		throughPtr bool
	}

	level := []step{{t: owner}}
	seen := map[reflect.Type]bool{owner: true}

	for len(level) > 0 {
		var next []step
		for _, s := range level {
			for i := range s.t.NumField() {
				sf := s.t.Field(i)
				if !sf.Anonymous {
					continue
				}

				cur := step{
					t:          sf.Type,
					index:      append(slices.Clone(s.index), i),
					embedded:   append(slices.Clone(s.embedded), sf.Name),
					throughPtr: s.throughPtr,
				}

				if cur.t.Kind() == reflect.Interface {
					if _, ok := cur.t.MethodByName(name); ok {
						return cur.index, cur.embedded, true
					}
					continue
				}
				if cur.t.Kind() == reflect.Pointer {
					cur.t = cur.t.Elem()
					cur.throughPtr = true
				}

				if declared(cur.t, name) {
					return cur.index, cur.embedded, cur.throughPtr
				}
				if cur.t.Kind() == reflect.Struct && !seen[cur.t] {
					seen[cur.t] = true
					next = append(next, cur)
				}
			}
		}
		level = next
	}

	return nil, nil, false
}

// declared reports whether t itself declares the named method, on either
// receiver, rather than promoting it from an embedded field
func declared(t reflect.Type, name string) bool {
	if m, ok := reflect.PointerTo(t).MethodByName(name); ok && !generated(m.Func) {
		return true
	}
	if t.Kind() == reflect.Pointer || t.Kind() == reflect.Interface {
		return false
	}
	m, ok := t.MethodByName(name)
	return ok && !generated(m.Func)
}

// generated reports whether fn is a compiler-generated wrapper, which is how
// promoted methods and pointer forms of value methods appear in a method set
func generated(fn reflect.Value) bool {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return true
	}
	file, _ := f.FileLine(f.Entry())
	return file == "<autogenerated>"
}

// Methods that satisfy well-known interfaces are behavior, not state
var nonProperties = map[string]bool{
	"String":   true,
	"GoString": true,
	"Error":    true,
}

// isGetter matches func(recv) T where T is not error
func isGetter(method reflect.Method) bool {
	if nonProperties[method.Name] {
		return false
	}
	mt := method.Type
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.IsVariadic() {
		return false
	}
	return mt.Out(0) != errorType
}

// isSetterFor matches func(recv, T) or func(recv, T) error
func isSetterFor(method reflect.Method, valueType reflect.Type) bool {
	mt := method.Type
	if mt.NumIn() != 2 || mt.IsVariadic() || mt.In(1) != valueType {
		return false
	}
	switch mt.NumOut() {
	case 0:
		return true
	case 1:
		return mt.Out(0) == errorType
	default:
		return false
	}
}

func visibilityOf(name string) Visibility {
	if token.IsExported(name) {
		return Exported
	}
	return Unexported
}

// Known tags we want to preserve on field descriptors
var knownTags = []string{"json", "yaml", "db", "validate", "desc", "example"}

func extractTags(field reflect.StructField) map[string]string {
	var tags map[string]string
	for _, tag := range knownTags {
		if value := field.Tag.Get(tag); value != "" {
			if tags == nil {
				tags = make(map[string]string)
			}
			tags[tag] = value
		}
	}
	return tags
}

// TagName returns the first comma-separated segment of a tag, the usual name position
func TagName(m *Member, tag string) string {
	value := m.Tags[tag]
	if value == "" || value == "-" {
		return ""
	}
	return strings.Split(value, ",")[0]
}
