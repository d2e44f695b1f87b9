// Package introspect caches per-type field metadata for the copier.
//
// Metadata is computed once per type on first use and kept for the process
// lifetime; types are assumed not to be redefined at runtime.
package introspect

import (
	"reflect"
	"strconv"
	"sync"
)

// FieldDescriptor describes one accessible field of a struct type.
type FieldDescriptor struct {
	Name string
	Type reflect.Type
	// Index is the field's index path for reflect.Value.FieldByIndex.
	Index    []int
	Readable bool
	Writable bool
}

// TypeMeta holds the ordered field metadata of one struct type. Exported Go
// struct fields are symmetrically readable and writable, so both views are
// backed by the same descriptor list; the split mirrors the copier's join of
// source-readable against destination-writable fields.
type TypeMeta struct {
	Type   reflect.Type
	fields []FieldDescriptor
	byName map[string]int
}

// Readable returns the readable fields in struct declaration order.
func (m *TypeMeta) Readable() []FieldDescriptor { return m.fields }

// Writable returns the writable fields in struct declaration order.
func (m *TypeMeta) Writable() []FieldDescriptor { return m.fields }

// ByName returns the descriptor for the exact (case-sensitive) field name.
func (m *TypeMeta) ByName(name string) (FieldDescriptor, bool) {
	i, ok := m.byName[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return m.fields[i], true
}

var metaCache sync.Map // reflect.Type -> *TypeMeta

// Fields retrieves or builds the field metadata for t. Pointer types are
// dereferenced to their element type. A non-struct type yields an empty
// record, never an error.
func Fields(t reflect.Type) *TypeMeta {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if m, ok := metaCache.Load(t); ok {
		return m.(*TypeMeta)
	}

	m, _ := metaCache.LoadOrStore(t, buildMeta(t))

	return m.(*TypeMeta)
}

func buildMeta(t reflect.Type) *TypeMeta {
	m := &TypeMeta{Type: t, byName: map[string]int{}}
	if t.Kind() != reflect.Struct {
		return m
	}

	for _, f := range reflect.VisibleFields(t) {
		// Skip embedded containers themselves; their promoted leaves are
		// enumerated separately.
		if f.Anonymous || !f.IsExported() {
			continue
		}

		if !reachable(t, f.Index) {
			continue
		}

		m.byName[f.Name] = len(m.fields)
		m.fields = append(m.fields, FieldDescriptor{
			Name:     f.Name,
			Type:     f.Type,
			Index:    f.Index,
			Readable: true,
			Writable: true,
		})
	}

	return m
}

// reachable reports whether the index path can be traversed on a struct
// value without going through an embedded pointer, where FieldByIndex would
// panic on a nil field. Unexported embedded structs are fine: reflect keeps
// exported fields promoted through them readable and settable.
func reachable(t reflect.Type, index []int) bool {
	cur := t

	for _, i := range index[:len(index)-1] {
		f := cur.Field(i)
		if f.Type.Kind() != reflect.Struct {
			return false
		}

		cur = f.Type
	}

	return true
}

// TypeName returns a stable human-readable name for t, qualified by package
// path for named types.
func TypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + TypeName(t.Elem())
	case reflect.Slice:
		return "[]" + TypeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + TypeName(t.Elem())
	case reflect.Map:
		return "map[" + TypeName(t.Key()) + "]" + TypeName(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}

		return t.PkgPath() + "." + t.Name()
	}
}
