// Package mapping loads YAML override files that customize how type pairs
// are joined: per-pair field renames and ignore lists applied when the plan
// for that pair is built. Overrides are opt-in; without them the join is
// exact-name-only.
package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// File is the root of a YAML mapping overrides document.
type File struct {
	Version string `yaml:"version"`
	Pairs   []Pair `yaml:"pairs"`
}

// Pair customizes the field join for one ordered type pair. Source and
// Target use the reflect short notation, e.g. "store.Customer".
type Pair struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
	// Rename maps a target field name to the source field read in place of
	// the same-named one.
	Rename map[string]string `yaml:"rename,omitempty"`
	// Ignore lists target fields excluded from copying.
	Ignore []string `yaml:"ignore,omitempty"`
}

// Find returns the customization for the (source, target) pair, or nil when
// the file has none. A nil receiver is a valid empty file.
func (f *File) Find(source, target string) *Pair {
	if f == nil {
		return nil
	}

	for i := range f.Pairs {
		p := &f.Pairs[i]
		if p.Source == source && p.Target == target {
			return p
		}
	}

	return nil
}

// Validate checks the file for structural problems: empty type names,
// duplicate pairs, empty rename entries and fields that are both renamed
// and ignored. All problems are reported, each naming the offending pair.
func (f *File) Validate() error {
	var errs []error

	seen := map[[2]string]struct{}{}

	for i := range f.Pairs {
		p := &f.Pairs[i]
		label := p.Source + " -> " + p.Target

		if p.Source == "" {
			errs = append(errs, fmt.Errorf("pair %d: empty source type", i))
		}

		if p.Target == "" {
			errs = append(errs, fmt.Errorf("pair %d: empty target type", i))
		}

		key := [2]string{p.Source, p.Target}
		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("duplicate pair %s", label))
		}

		seen[key] = struct{}{}

		// Sorted so repeated validation of the same file reports the same
		// error text.
		for _, dstName := range slices.Sorted(maps.Keys(p.Rename)) {
			if dstName == "" || p.Rename[dstName] == "" {
				errs = append(errs, fmt.Errorf("pair %s: rename entry with empty field name", label))
				continue
			}

			if slices.Contains(p.Ignore, dstName) {
				errs = append(errs, fmt.Errorf("pair %s: field %q is both renamed and ignored", label, dstName))
			}
		}
	}

	return errors.Join(errs...)
}
