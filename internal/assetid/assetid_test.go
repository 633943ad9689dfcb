package assetid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStableHash_KnownValues(t *testing.T) {
	cases := map[string]int32{
		"":           371857150,
		"a":          372029373,
		"ab":         1093630535,
		"Eikthyrnir": -316818231,
		"Skeleton":   -1035090735,
		"Ruin_Tower": -707004618,
	}
	for name, want := range cases {
		assert.Equal(t, want, StableHash(name), "hash of %q", name)
	}
}

func TestStableHash_StopsAtNUL(t *testing.T) {
	assert.Equal(t, StableHash("ab"), StableHash("ab\x00cd"))
}

func TestGenerate_IsPure(t *testing.T) {
	first := Generate("Ruin_Tower")
	second := Generate("Ruin_Tower")
	require.Equal(t, first, second)
	assert.True(t, first.IsValid())
	assert.Equal(t, first.A, first.B)
	assert.Equal(t, first.A, first.C)
	assert.Equal(t, first.A, first.D)
	assert.Equal(t, "d5dbf736d5dbf736d5dbf736d5dbf736", first.String())
}

func TestGenerate_DistinctNames(t *testing.T) {
	names := []string{"Ruin_Tower", "Ruin_Tower2", "Crypt", "crypt", "Skeleton", "Draugr", "Eikthyrnir"}
	seen := make(map[ID]string, len(names))
	for _, name := range names {
		id := Generate(name)
		if prev, ok := seen[id]; ok {
			t.Fatalf("Generate(%q) collides with Generate(%q)", name, prev)
		}
		seen[id] = name
	}
}

func TestID_ZeroIsInvalid(t *testing.T) {
	assert.False(t, ID{}.IsValid())
	assert.True(t, ID{D: 1}.IsValid())
}
