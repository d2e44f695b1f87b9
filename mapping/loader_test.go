package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
pairs:
  - source: store.Customer
    target: dto.Customer
    rename:
      Surname: LastName
    ignore: [CreatedAt]
  - source: store.Product
    target: dto.Product
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Pairs, 2)

	p := f.Find("store.Customer", "dto.Customer")
	require.NotNil(t, p)
	assert.Equal(t, map[string]string{"Surname": "LastName"}, p.Rename)
	assert.Equal(t, []string{"CreatedAt"}, p.Ignore)

	assert.Nil(t, f.Find("dto.Customer", "store.Customer"), "pairs are ordered")
}

func TestParseAppliesDefaultVersion(t *testing.T) {
	f, err := Parse([]byte("pairs: []"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("pairs: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse mapping YAML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "empty source",
			yaml: "pairs:\n  - target: dto.Customer\n",
			want: "empty source type",
		},
		{
			name: "empty target",
			yaml: "pairs:\n  - source: store.Customer\n",
			want: "empty target type",
		},
		{
			name: "duplicate pair",
			yaml: "pairs:\n" +
				"  - {source: store.Customer, target: dto.Customer}\n" +
				"  - {source: store.Customer, target: dto.Customer}\n",
			want: "duplicate pair store.Customer -> dto.Customer",
		},
		{
			name: "renamed and ignored",
			yaml: "pairs:\n" +
				"  - source: store.Customer\n" +
				"    target: dto.Customer\n" +
				"    rename: {Surname: LastName}\n" +
				"    ignore: [Surname]\n",
			want: `field "Surname" is both renamed and ignored`,
		},
		{
			name: "empty rename entry",
			yaml: "pairs:\n" +
				"  - source: store.Customer\n" +
				"    target: dto.Customer\n" +
				"    rename: {Surname: \"\"}\n",
			want: "rename entry with empty field name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateReportsRenameErrorsInFieldOrder(t *testing.T) {
	yaml := "pairs:\n" +
		"  - source: store.Customer\n" +
		"    target: dto.Customer\n" +
		"    rename: {Zed: LastName, Alpha: FirstName}\n" +
		"    ignore: [Zed, Alpha]\n"

	// Two independent rename problems in one pair; the joined message lists
	// them by field name, not map iteration order.
	want := `pair store.Customer -> dto.Customer: field "Alpha" is both renamed and ignored` + "\n" +
		`pair store.Customer -> dto.Customer: field "Zed" is both renamed and ignored`

	for range 3 {
		_, err := Parse([]byte(yaml))
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pairs:\n  - {source: a.A, target: b.B}\n"), 0o600))

	f, err := LoadFile(path)
	require.NoError(t, err)
	require.NotNil(t, f.Find("a.A", "b.B"))

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read mapping file")
}

func TestMarshalRoundTrip(t *testing.T) {
	f := &File{
		Version: "1",
		Pairs: []Pair{
			{Source: "store.Customer", Target: "dto.Customer", Ignore: []string{"CreatedAt"}},
		},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestNilFileFind(t *testing.T) {
	var f *File

	assert.Nil(t, f.Find("a.A", "b.B"))
}
