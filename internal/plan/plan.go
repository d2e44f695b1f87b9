package plan

import (
	"reflect"

	"github.com/manfredwippel/PropMapper/internal/introspect"
)

// FieldCopy is one resolved correspondence between a readable source field
// and a writable destination field.
type FieldCopy struct {
	SrcName  string
	DstName  string
	SrcIndex []int
	DstIndex []int
	// Pinned is true when the correspondence came from an override rename
	// rather than the exact-name join.
	Pinned bool
}

// Plan is the resolved mapping between one ordered type pair. A plan is
// built at most once per pair, owned by the cache, and borrowed by the
// executor for the duration of a single copy call.
type Plan struct {
	Src reflect.Type
	Dst reflect.Type
	// Fields lists the correspondences in the destination's writable-field
	// enumeration order.
	Fields []FieldCopy

	// Create and Copy are set on manually registered plans and take
	// precedence over Fields. Both operate on non-nil pointer values.
	Create func(src reflect.Value) reflect.Value
	Copy   func(src, dst reflect.Value)
}

// Manual reports whether the plan was supplied by the caller instead of
// being derived from introspection.
func (p *Plan) Manual() bool { return p.Create != nil || p.Copy != nil }

// Overrides customizes the field join for one type pair. A nil *Overrides
// applies no customization.
type Overrides struct {
	// Rename maps a destination field name to the source field read in
	// place of the same-named one.
	Rename map[string]string
	// Ignore excludes destination fields from the join.
	Ignore map[string]struct{}
}

// Renamed returns the pinned source field for a destination field, if any.
func (o *Overrides) Renamed(dst string) (string, bool) {
	if o == nil {
		return "", false
	}

	src, ok := o.Rename[dst]

	return src, ok
}

// Ignored reports whether a destination field is excluded from copying.
func (o *Overrides) Ignored(dst string) bool {
	if o == nil {
		return false
	}

	_, ok := o.Ignore[dst]

	return ok
}

// Build resolves the mapping plan for the ordered (src, dst) type pair.
//
// Destination writable fields are joined against source readable fields by
// exact, case-sensitive name equality. A joined pair is kept only when the
// source field is directly assignable to the destination field; pairs that
// fail the check are dropped silently. A plan with zero correspondences is
// valid.
//
// Build is a pure function of the two type descriptions and the overrides:
// repeated builds of the same pair produce equivalent plans.
func Build(src, dst reflect.Type, ov *Overrides) *Plan {
	p := &Plan{Src: src, Dst: dst}
	srcMeta := introspect.Fields(src)

	for _, df := range introspect.Fields(dst).Writable() {
		if ov.Ignored(df.Name) {
			continue
		}

		srcName := df.Name

		pinned := false
		if renamed, ok := ov.Renamed(df.Name); ok {
			srcName, pinned = renamed, true
		}

		sf, ok := srcMeta.ByName(srcName)
		if !ok || !sf.Readable {
			continue
		}

		if !sf.Type.AssignableTo(df.Type) {
			continue
		}

		p.Fields = append(p.Fields, FieldCopy{
			SrcName:  sf.Name,
			DstName:  df.Name,
			SrcIndex: sf.Index,
			DstIndex: df.Index,
			Pinned:   pinned,
		})
	}

	return p
}
