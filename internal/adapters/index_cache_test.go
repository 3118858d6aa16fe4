package adapters

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shellpin/internal/core"
)

func buildTestIndex(t *testing.T, revision string) *core.PackageIndex {
	t.Helper()
	raw := []byte("packages:\n  toolchain:\n    - version: \"1.58\"\n      channel: stable\n")
	index, err := core.BuildIndex(raw, revision)
	require.NoError(t, err)
	return index
}

func TestIndexCacheRoundtrip(t *testing.T) {
	cache, err := NewIndexCacheAdapter(4)
	require.NoError(t, err)

	_, ok := cache.Get("e91ed60")
	assert.False(t, ok)

	cache.Add("e91ed60", buildTestIndex(t, "e91ed60"))

	got, ok := cache.Get("e91ed60")
	require.True(t, ok)
	assert.Equal(t, "e91ed60", got.Revision())
	assert.Equal(t, 1, got.Len())
}

func TestIndexCacheEvictsOldest(t *testing.T) {
	cache, err := NewIndexCacheAdapter(2)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		revision := fmt.Sprintf("reva%03d", i)
		cache.Add(revision, buildTestIndex(t, revision))
	}

	_, ok := cache.Get("reva000")
	assert.False(t, ok)
	_, ok = cache.Get("reva002")
	assert.True(t, ok)
}

func TestIndexCacheDefaultSize(t *testing.T) {
	cache, err := NewIndexCacheAdapter(0)
	require.NoError(t, err)

	cache.Add("e91ed60", buildTestIndex(t, "e91ed60"))
	_, ok := cache.Get("e91ed60")
	assert.True(t, ok)
}
