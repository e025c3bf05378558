package demo_test

import (
	"strings"
	"testing"

	"github.com/graph-guard/chmap"
	"github.com/graph-guard/chmap/demo"

	"github.com/stretchr/testify/require"
)

// MockHasher assigns predefined hash values to keys
// to make slot placement deterministic in tests.
type MockHasher struct {
	Map map[string]uint64
}

func (h *MockHasher) Hash(k string) uint64 {
	v, ok := h.Map[k]
	if !ok {
		panic("unexpected key: " + k)
	}
	return v
}

func TestFprint(t *testing.T) {
	m, err := chmap.New[string, string](4, &MockHasher{
		Map: map[string]uint64{"a": 1, "b": 5, "c": 3},
	})
	require.NoError(t, err)

	m.Put("a", "1")
	m.Put("b", "2") // collides with "a" on slot 1
	m.Put("c", "3")

	var b strings.Builder
	require.NoError(t, demo.Fprint(&b, m))
	require.Equal(t,
		`[    1]: "a": "1", "b": "2"
[    3]: "c": "3"
3 entries across 2 of 4 slots (longest chain: 2)
`,
		b.String(),
	)
}

func TestFprintEmpty(t *testing.T) {
	m, err := chmap.New[string, string](4, nil)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, demo.Fprint(&b, m))
	require.Equal(t,
		"0 entries across 0 of 4 slots (longest chain: 0)\n",
		b.String(),
	)
}

func TestReadDataset(t *testing.T) {
	d, err := demo.ReadDataset(strings.NewReader(`
capacity: 4
entries:
  - key: "value 1"
    value: "7"
  - key: "value 2"
    value: "1370"
`))
	require.NoError(t, err)
	require.Equal(t, &demo.Dataset{
		Capacity: 4,
		Entries: []demo.Entry{
			{Key: "value 1", Value: "7"},
			{Key: "value 2", Value: "1370"},
		},
	}, d)
}

func TestReadDatasetDefaultCapacity(t *testing.T) {
	d, err := demo.ReadDataset(strings.NewReader(`
entries:
  - key: a
  - key: b
  - key: c
`))
	require.NoError(t, err)
	require.Equal(t, 3, d.Capacity)
}

func TestReadDatasetErr(t *testing.T) {
	for _, td := range []struct {
		name   string
		input  string
		expect error
	}{
		{
			name:   "no_entries",
			input:  "capacity: 4",
			expect: demo.ErrNoEntries,
		},
		{
			name: "missing_key",
			input: `
entries:
  - key: a
  - value: b
`,
			expect: demo.ErrEntryNoKey,
		},
		{
			name: "negative_capacity",
			input: `
capacity: -1
entries:
  - key: a
`,
			expect: chmap.ErrCapacity,
		},
	} {
		t.Run(td.name, func(t *testing.T) {
			d, err := demo.ReadDataset(strings.NewReader(td.input))
			require.ErrorIs(t, err, td.expect)
			require.Nil(t, d)
		})
	}
}

func TestReadDatasetUnknownField(t *testing.T) {
	d, err := demo.ReadDataset(strings.NewReader(`
size: 4
entries:
  - key: a
`))
	require.Error(t, err)
	require.Nil(t, d)
}

func TestReadDatasetFile(t *testing.T) {
	d, err := demo.ReadDatasetFile("testdata/dataset.yaml")
	require.NoError(t, err)
	require.Equal(t, 4, d.Capacity)
	require.Len(t, d.Entries, 4)
}

func TestReadDatasetFileErr(t *testing.T) {
	d, err := demo.ReadDatasetFile("testdata/nonexistent.yaml")
	require.Error(t, err)
	require.Nil(t, d)
}

func TestDatasetLoad(t *testing.T) {
	d, err := demo.ReadDatasetFile("testdata/dataset.yaml")
	require.NoError(t, err)

	m, err := d.Load(nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.Capacity())
	require.Equal(t, 4, m.Len())

	v, ok := m.Get("value 2")
	require.True(t, ok)
	require.Equal(t, "1370", v)
}

func TestDatasetLoadDuplicateKeys(t *testing.T) {
	d := &demo.Dataset{
		Capacity: 2,
		Entries: []demo.Entry{
			{Key: "a", Value: "old"},
			{Key: "a", Value: "new"},
		},
	}
	m, err := d.Load(nil)
	require.NoError(t, err)
	require.Equal(t, 1, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, "new", v)
}

func TestDatasetFill(t *testing.T) {
	d := &demo.Dataset{
		Capacity: 8,
		Entries:  []demo.Entry{{Key: "a", Value: "1"}},
	}
	d.Fill(100)
	require.Len(t, d.Entries, 101)
	require.Equal(t, 8, d.Capacity)

	m, err := d.Load(nil)
	require.NoError(t, err)
	require.Equal(t, 101, m.Len())
}
