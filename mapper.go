package propmapper

import (
	"iter"
	"reflect"

	"github.com/manfredwippel/PropMapper/internal/cache"
	"github.com/manfredwippel/PropMapper/internal/exec"
	"github.com/manfredwippel/PropMapper/internal/plan"
	"github.com/manfredwippel/PropMapper/mapping"
)

// Mapper resolves and caches mapping plans for ordered type pairs and
// executes them. The zero strategy builds missing plans on demand; a manual
// mapper only uses plans installed through Register.
type Mapper struct {
	cache     *cache.Cache
	manual    bool
	overrides *mapping.File
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithOverrides applies per-pair field renames and ignore lists from a
// mapping overrides file whenever a plan is built.
func WithOverrides(f *mapping.File) Option {
	return func(m *Mapper) { m.overrides = f }
}

// New returns a mapper using the automatic strategy: the first use of a type
// pair builds its plan, every later use is a cache hit.
func New(opts ...Option) *Mapper {
	m := &Mapper{}
	for _, opt := range opts {
		opt(m)
	}

	m.cache = cache.New(m.buildPlan)

	return m
}

// NewManual returns a mapper using the manual-registration strategy: façade
// operations fail with a *ConfigurationError for any pair that was not
// installed through Register beforehand.
func NewManual(opts ...Option) *Mapper {
	m := New(opts...)
	m.manual = true

	return m
}

func (m *Mapper) buildPlan(src, dst reflect.Type) *plan.Plan {
	return plan.Build(src, dst, m.overridesFor(src, dst))
}

func (m *Mapper) overridesFor(src, dst reflect.Type) *plan.Overrides {
	p := m.overrides.Find(src.String(), dst.String())
	if p == nil {
		return nil
	}

	ov := &plan.Overrides{Rename: p.Rename}

	if len(p.Ignore) > 0 {
		ov.Ignore = make(map[string]struct{}, len(p.Ignore))
		for _, name := range p.Ignore {
			ov.Ignore[name] = struct{}{}
		}
	}

	return ov
}

func (m *Mapper) planFor(src, dst reflect.Type) (*plan.Plan, error) {
	if m.manual {
		p, ok := m.cache.Lookup(src, dst)
		if !ok {
			return nil, &ConfigurationError{Src: src, Dst: dst}
		}

		return p, nil
	}

	return m.cache.GetOrBuild(src, dst), nil
}

// Register installs a caller-supplied plan substitute for the (S, D) pair on
// m, replacing any prior plan for that pair (last-write-wins). Once
// registered, all façade operations behave identically regardless of whether
// the plan was auto-built or supplied here. Both functions must be non-nil;
// they receive non-nil pointers.
func Register[S, D any](m *Mapper, create func(*S) *D, copyInto func(*S, *D)) {
	if create == nil || copyInto == nil {
		panic("propmapper: Register requires non-nil create and copyInto functions")
	}

	src, dst := reflect.TypeFor[S](), reflect.TypeFor[D]()

	m.cache.Register(src, dst, &plan.Plan{
		Src: src,
		Dst: dst,
		Create: func(v reflect.Value) reflect.Value {
			return reflect.ValueOf(create(v.Interface().(*S)))
		},
		Copy: func(sv, dv reflect.Value) {
			copyInto(sv.Interface().(*S), dv.Interface().(*D))
		},
	})
}

// CreateCopyWith allocates a new D and populates it from src using m.
// Returns ErrNilSource when src is nil, and a *ConfigurationError when m is
// manual and the pair is unregistered.
func CreateCopyWith[D, S any](m *Mapper, src *S) (*D, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	p, err := m.planFor(reflect.TypeFor[S](), reflect.TypeFor[D]())
	if err != nil {
		return nil, err
	}

	return exec.InstantiateAndCopy(p, reflect.ValueOf(src)).Interface().(*D), nil
}

// CopyToWith copies the matched fields of src into dst in place using m.
// It returns false without resolving a plan when either argument is nil.
func CopyToWith[S, D any](m *Mapper, src *S, dst *D) (bool, error) {
	if src == nil || dst == nil {
		return false, nil
	}

	p, err := m.planFor(reflect.TypeFor[S](), reflect.TypeFor[D]())
	if err != nil {
		return false, err
	}

	return exec.CopyInto(p, reflect.ValueOf(src), reflect.ValueOf(dst)), nil
}

// CopyFromWith is CopyToWith with the arguments swapped; it resolves the
// same (S, D) plan.
func CopyFromWith[D, S any](m *Mapper, dst *D, src *S) (bool, error) {
	return CopyToWith(m, src, dst)
}

// CopyAllWith returns a lazy, single-pass sequence that copies each non-nil
// element of src into a new D on demand. Nil elements are skipped, never
// yielded as nil outputs. The plan is resolved once, when CopyAllWith is
// called; the result is restartable only if src is.
func CopyAllWith[D, S any](m *Mapper, src iter.Seq[*S]) (iter.Seq[*D], error) {
	p, err := m.planFor(reflect.TypeFor[S](), reflect.TypeFor[D]())
	if err != nil {
		return nil, err
	}

	return func(yield func(*D) bool) {
		for s := range src {
			if s == nil {
				continue
			}

			d := exec.InstantiateAndCopy(p, reflect.ValueOf(s)).Interface().(*D)
			if !yield(d) {
				return
			}
		}
	}, nil
}
