package chmap_test

import (
	"fmt"
	"testing"

	"github.com/graph-guard/chmap"

	"github.com/stretchr/testify/require"
)

func TestHasherTimes33(t *testing.T) {
	h := chmap.HasherTimes33[string]{}
	for _, td := range []struct {
		key    string
		expect uint64
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*33 + 98},
		{"abc", (97*33+98)*33 + 99},
		{"value 1", ((((('v'*33+'a')*33+'l')*33+'u')*33+'e')*33+' ')*33 + '1'},
	} {
		t.Run(fmt.Sprintf("%q", td.key), func(t *testing.T) {
			require.Equal(t, td.expect, h.Hash(td.key))
		})
	}
}

func TestHasherTimes33Bytes(t *testing.T) {
	hs := chmap.HasherTimes33[string]{}
	hb := chmap.HasherTimes33[[]byte]{}
	for _, key := range []string{"", "a", "collision chain", "caf\xc3\xa9"} {
		require.Equal(t, hs.Hash(key), hb.Hash([]byte(key)))
	}
}

func TestHasherTimes33Deterministic(t *testing.T) {
	h := chmap.HasherTimes33[string]{}
	for i := 0; i < 3; i++ {
		require.Equal(t, h.Hash("determinism"), h.Hash("determinism"))
	}
}

func TestHashersDistinctKeys(t *testing.T) {
	for _, td := range []struct {
		name   string
		hasher chmap.Hasher[string]
	}{
		{"times33", chmap.HasherTimes33[string]{}},
		{"xxh3", &chmap.HasherXXH3[string]{}},
		{"xxh64", chmap.HasherXXH64[string]{}},
		{"xxh32", &chmap.HasherXXH32[string]{}},
	} {
		t.Run(td.name, func(t *testing.T) {
			require.Equal(t, td.hasher.Hash("key"), td.hasher.Hash("key"))
			require.NotEqual(t, td.hasher.Hash("key_a"), td.hasher.Hash("key_b"))
		})
	}
}

func TestHasherXXH3Seed(t *testing.T) {
	a := &chmap.HasherXXH3[string]{Seed: 1}
	b := &chmap.HasherXXH3[string]{Seed: 2}
	require.NotEqual(t, a.Hash("key"), b.Hash("key"))
}

func TestCustomHasherSelectsSlots(t *testing.T) {
	for _, td := range []struct {
		name   string
		hasher chmap.Hasher[string]
	}{
		{"default", nil},
		{"xxh3", &chmap.HasherXXH3[string]{}},
		{"xxh64", chmap.HasherXXH64[string]{}},
		{"xxh32", &chmap.HasherXXH32[string]{}},
	} {
		t.Run(td.name, func(t *testing.T) {
			m, err := chmap.New[string, int](16, td.hasher)
			require.NoError(t, err)
			for i := 0; i < 64; i++ {
				m.Put(fmt.Sprintf("key_%d", i), i)
			}
			require.Equal(t, 64, m.Len())
			for i := 0; i < 64; i++ {
				v, ok := m.Get(fmt.Sprintf("key_%d", i))
				require.True(t, ok)
				require.Equal(t, i, v)
			}
		})
	}
}
