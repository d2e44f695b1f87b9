// Package cache stores one canonical mapping plan per ordered type pair for
// the process lifetime.
//
// Steady-state lookups are lock-free sync.Map hits. First use of a pair is
// guarded by the slot's one-shot build gate, so the builder runs at most
// once per pair no matter how many callers race on it; one caller computes
// and the rest wait for the same completed plan. Slots are keyed by type
// identity, so same-named types declared in different scopes never share a
// build. Registration is a last-write-wins atomic pointer swap: readers
// never see a partially-constructed plan and copies already in flight keep
// using the plan they resolved.
package cache

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/manfredwippel/PropMapper/internal/plan"
)

// BuildFunc produces the plan for an uncached type pair.
type BuildFunc func(src, dst reflect.Type) *plan.Plan

// Cache maps ordered type pairs to their mapping plans.
type Cache struct {
	build  BuildFunc
	slots  sync.Map // pairKey -> *slot
	builds atomic.Int64
}

// pairKey is the composite cache key; (A,B) and (B,A) are distinct entries.
type pairKey struct {
	src, dst reflect.Type
}

// slot holds one pair's plan and its one-shot build gate.
type slot struct {
	plan  atomic.Pointer[plan.Plan]
	build sync.Once
}

// New returns an empty cache that builds missing plans with build.
func New(build BuildFunc) *Cache {
	return &Cache{build: build}
}

func (c *Cache) slot(k pairKey) *slot {
	if s, ok := c.slots.Load(k); ok {
		return s.(*slot)
	}

	s, _ := c.slots.LoadOrStore(k, &slot{})

	return s.(*slot)
}

// Lookup is a non-building read. The second result is false when the pair
// has no completed plan; a slot claimed by an in-flight build still counts
// as absent.
func (c *Cache) Lookup(src, dst reflect.Type) (*plan.Plan, bool) {
	s, ok := c.slots.Load(pairKey{src, dst})
	if !ok {
		return nil, false
	}

	p := s.(*slot).plan.Load()

	return p, p != nil
}

// GetOrBuild returns the cached plan for the pair, building it first if
// needed. Concurrent first callers share a single build.
func (c *Cache) GetOrBuild(src, dst reflect.Type) *plan.Plan {
	s := c.slot(pairKey{src, dst})

	if p := s.plan.Load(); p != nil {
		return p
	}

	s.build.Do(func() {
		// A registration may have landed between the miss above and
		// claiming the build.
		if s.plan.Load() != nil {
			return
		}

		c.builds.Add(1)
		built := c.build(src, dst)

		// Keep a plan registered mid-build; register wins.
		s.plan.CompareAndSwap(nil, built)
	})

	return s.plan.Load()
}

// Register unconditionally installs p for the pair, replacing any prior
// entry. Visible to all subsequently-started calls.
func (c *Cache) Register(src, dst reflect.Type, p *plan.Plan) {
	c.slot(pairKey{src, dst}).plan.Store(p)
}

// Builds returns how many times the builder has run. Steady-state traffic
// never increments it; tests use it to verify the at-most-one-build
// guarantee.
func (c *Cache) Builds() int64 { return c.builds.Load() }
