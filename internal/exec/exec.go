// Package exec applies a resolved mapping plan to concrete instances.
// It never retains references beyond a single call, performs no I/O and
// does no logging.
package exec

import (
	"reflect"

	"github.com/manfredwippel/PropMapper/internal/plan"
)

// InstantiateAndCopy allocates a new zero destination, applies every
// correspondence in the plan and returns a pointer value to the populated
// instance. src must be a non-nil pointer value; the nil check belongs to
// the façade.
func InstantiateAndCopy(p *plan.Plan, src reflect.Value) reflect.Value {
	if p.Create != nil {
		return p.Create(src)
	}

	dst := reflect.New(p.Dst)
	apply(p, src.Elem(), dst.Elem())

	return dst
}

// CopyInto applies every correspondence in the plan against the two provided
// pointer values, mutating dst in place. It returns false without copying
// anything when either value is absent, and true after all correspondences
// are applied; field copies validated at build time cannot fail mid-way.
func CopyInto(p *plan.Plan, src, dst reflect.Value) bool {
	if !usable(src) || !usable(dst) {
		return false
	}

	if p.Copy != nil {
		p.Copy(src, dst)
		return true
	}

	apply(p, src.Elem(), dst.Elem())

	return true
}

func apply(p *plan.Plan, src, dst reflect.Value) {
	for _, f := range p.Fields {
		dst.FieldByIndex(f.DstIndex).Set(src.FieldByIndex(f.SrcIndex))
	}
}

func usable(v reflect.Value) bool {
	return v.IsValid() && v.Kind() == reflect.Pointer && !v.IsNil()
}
