// Package propmapper copies same-named fields between otherwise unrelated
// struct types, so layered representations of one logical entity (domain
// entity, transfer object) need no hand-written per-pair copying code.
//
// For each ordered (source, destination) type pair the package resolves
// which fields correspond — exact, case-sensitive name equality plus direct
// assignability — compiles the result into a mapping plan exactly once, and
// replays that plan on every subsequent call. Incompatible or unmatched
// fields are excluded silently: callers get a best-effort partial copy, not
// an all-or-nothing failure.
//
// The package-level functions use a process-wide mapper with the automatic
// strategy. Use New or NewManual for a mapper with its own plan cache,
// overrides, or the manual-registration strategy.
package propmapper

import (
	"iter"
	"slices"
)

var std = New()

// Default returns the process-wide mapper used by the package-level
// functions.
func Default() *Mapper { return std }

// CreateCopy allocates a new D and populates it from the matched fields of
// src. Returns ErrNilSource when src is nil.
func CreateCopy[D, S any](src *S) (*D, error) {
	return CreateCopyWith[D](std, src)
}

// CopyTo copies the matched fields of src into dst in place. It returns
// false without resolving a plan when either argument is nil, and true once
// every correspondence has been applied.
func CopyTo[S, D any](src *S, dst *D) bool {
	ok, _ := CopyToWith(std, src, dst)
	return ok
}

// CopyFrom is CopyTo with the arguments swapped; both resolve the same
// (S, D) plan.
func CopyFrom[D, S any](dst *D, src *S) bool {
	ok, _ := CopyFromWith(std, dst, src)
	return ok
}

// CopyAll returns a lazy, single-pass sequence of new D instances, one per
// non-nil element of src, in order. Nil elements are silently skipped.
func CopyAll[D, S any](src iter.Seq[*S]) iter.Seq[*D] {
	seq, _ := CopyAllWith[D](std, src)
	return seq
}

// CopyAllSlice is CopyAll over the elements of a slice.
func CopyAllSlice[D, S any](src []*S) iter.Seq[*D] {
	return CopyAll[D](slices.Values(src))
}
