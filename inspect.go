package propmapper

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/manfredwippel/PropMapper/internal/introspect"
)

//go:generate go tool stringer -type=MatchStatus -output=matchstatus_string.go

// MatchStatus classifies one field row in a Report.
type MatchStatus int

const (
	StatusMatched       MatchStatus = iota // copied via the exact-name join
	StatusPinned                           // copied via an override rename
	StatusIgnored                          // excluded by an override ignore list
	StatusIncompatible                     // name matched but types are not assignable
	StatusNoCounterpart                    // destination field with no matching source field
	StatusUnused                           // source field not consumed by any correspondence
)

// Row describes one field correspondence, or the lack of one. Destination
// rows carry DstField/DstType; StatusUnused rows describe a leftover source
// field and leave the destination side empty.
type Row struct {
	SrcField string
	SrcType  reflect.Type
	DstField string
	DstType  reflect.Type
	Status   MatchStatus
}

// Report is a read-only projection of a resolved type pair's field
// correspondences, sufficient for a visualization collaborator to render a
// diagram.
type Report struct {
	Src, Dst reflect.Type
	Rows     []Row
}

// Inspect projects the (S, D) correspondences of the default mapper.
func Inspect[S, D any]() Report {
	return InspectWith[S, D](std)
}

// InspectWith resolves the (S, D) pair on m and projects its field
// correspondences. The pair is built if it has not been resolved yet; on a
// manual mapper the analysis runs without installing anything, so the
// strategy's registration requirement stays intact. Plans registered as
// create/copy functions are opaque, so rows always reflect the introspected
// join.
func InspectWith[S, D any](m *Mapper) Report {
	return m.inspect(reflect.TypeFor[S](), reflect.TypeFor[D]())
}

func (m *Mapper) inspect(src, dst reflect.Type) Report {
	if !m.manual {
		m.cache.GetOrBuild(src, dst)
	}

	rep := Report{Src: src, Dst: dst}
	ov := m.overridesFor(src, dst)
	srcMeta := introspect.Fields(src)
	used := map[string]bool{}

	for _, df := range introspect.Fields(dst).Writable() {
		row := Row{DstField: df.Name, DstType: df.Type}

		if ov.Ignored(df.Name) {
			row.Status = StatusIgnored
			rep.Rows = append(rep.Rows, row)

			continue
		}

		srcName := df.Name

		pinned := false
		if renamed, ok := ov.Renamed(df.Name); ok {
			srcName, pinned = renamed, true
		}

		sf, ok := srcMeta.ByName(srcName)

		switch {
		case !ok:
			row.Status = StatusNoCounterpart
		case !sf.Type.AssignableTo(df.Type):
			row.SrcField, row.SrcType = sf.Name, sf.Type
			row.Status = StatusIncompatible
			used[sf.Name] = true
		default:
			row.SrcField, row.SrcType = sf.Name, sf.Type

			row.Status = StatusMatched
			if pinned {
				row.Status = StatusPinned
			}

			used[sf.Name] = true
		}

		rep.Rows = append(rep.Rows, row)
	}

	for _, sf := range srcMeta.Readable() {
		if !used[sf.Name] {
			rep.Rows = append(rep.Rows, Row{SrcField: sf.Name, SrcType: sf.Type, Status: StatusUnused})
		}
	}

	return rep
}

// String renders the report as a plain-text correspondence table.
func (r Report) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s -> %s\n", introspect.TypeName(r.Src), introspect.TypeName(r.Dst))

	for _, row := range r.Rows {
		switch row.Status {
		case StatusUnused:
			fmt.Fprintf(&b, "  %s %s -> (none) [%s]\n", row.SrcField, row.SrcType, row.Status)
		case StatusNoCounterpart, StatusIgnored:
			fmt.Fprintf(&b, "  (none) -> %s %s [%s]\n", row.DstField, row.DstType, row.Status)
		default:
			fmt.Fprintf(&b, "  %s %s -> %s %s [%s]\n",
				row.SrcField, row.SrcType, row.DstField, row.DstType, row.Status)
		}
	}

	return b.String()
}
