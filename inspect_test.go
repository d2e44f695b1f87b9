package propmapper_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	propmapper "github.com/manfredwippel/PropMapper"
	"github.com/manfredwippel/PropMapper/mapping"
)

type inspectSrc struct {
	ID     int64
	Name   string
	Count  int
	Legacy string
}

type inspectDst struct {
	ID      int64
	Name    string
	Count   string // incompatible with inspectSrc.Count
	Version int    // no source counterpart
}

func rowFor(t *testing.T, rep propmapper.Report, dstField string) propmapper.Row {
	t.Helper()

	for _, row := range rep.Rows {
		if row.DstField == dstField {
			return row
		}
	}

	t.Fatalf("no row for destination field %q in\n%s", dstField, spew.Sdump(rep))

	return propmapper.Row{}
}

func TestInspectStatuses(t *testing.T) {
	rep := propmapper.Inspect[inspectSrc, inspectDst]()

	assert.Equal(t, propmapper.StatusMatched, rowFor(t, rep, "ID").Status)
	assert.Equal(t, propmapper.StatusMatched, rowFor(t, rep, "Name").Status)
	assert.Equal(t, propmapper.StatusIncompatible, rowFor(t, rep, "Count").Status)
	assert.Equal(t, propmapper.StatusNoCounterpart, rowFor(t, rep, "Version").Status)

	// Legacy is readable on the source but consumed by nothing.
	var unused []string

	for _, row := range rep.Rows {
		if row.Status == propmapper.StatusUnused {
			unused = append(unused, row.SrcField)
		}
	}

	assert.Equal(t, []string{"Legacy"}, unused)
}

func TestInspectWithOverrides(t *testing.T) {
	type entity struct {
		LastName string
		Secret   string
	}

	type view struct {
		Surname string
		Secret  string
	}

	f := &mapping.File{
		Version: "1",
		Pairs: []mapping.Pair{{
			Source: "propmapper_test.entity",
			Target: "propmapper_test.view",
			Rename: map[string]string{"Surname": "LastName"},
			Ignore: []string{"Secret"},
		}},
	}
	require.NoError(t, f.Validate())

	m := propmapper.New(propmapper.WithOverrides(f))

	rep := propmapper.InspectWith[entity, view](m)
	assert.Equal(t, propmapper.StatusPinned, rowFor(t, rep, "Surname").Status)
	assert.Equal(t, "LastName", rowFor(t, rep, "Surname").SrcField)
	assert.Equal(t, propmapper.StatusIgnored, rowFor(t, rep, "Secret").Status)

	// The overrides drive the executed plan, not just the report.
	out, err := propmapper.CreateCopyWith[view](m, &entity{LastName: "Doe", Secret: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Doe", out.Surname)
	assert.Empty(t, out.Secret)
}

func TestInspectDoesNotRegisterOnManualMapper(t *testing.T) {
	m := propmapper.NewManual()

	rep := propmapper.InspectWith[inspectSrc, inspectDst](m)
	assert.NotEmpty(t, rep.Rows)

	// The analysis above must not have installed a plan.
	_, err := propmapper.CreateCopyWith[inspectDst](m, &inspectSrc{})
	var cfgErr *propmapper.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestReportString(t *testing.T) {
	rep := propmapper.Inspect[inspectSrc, inspectDst]()
	s := rep.String()

	t.Logf("report:\n%s", s)

	assert.Contains(t, s, "ID int64 -> ID int64 [StatusMatched]")
	assert.Contains(t, s, "Count int -> Count string [StatusIncompatible]")
	assert.Contains(t, s, "(none) -> Version int [StatusNoCounterpart]")
	assert.Contains(t, s, "Legacy string -> (none) [StatusUnused]")
}
