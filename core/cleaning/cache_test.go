package cleaning

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryCache_Caches(t *testing.T) {
	store := &fakeStore{sizes: []KnownValue{{Label: "2x2"}}}
	cache := NewDictionaryCache(store, time.Minute)

	d1, err := cache.Get(context.Background())
	require.NoError(t, err)
	d2, err := cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.loads)
	assert.True(t, d1.HasSizeLabel("2x2"))
	assert.True(t, d2.HasSizeLabel("2x2"))
}

func TestDictionaryCache_ClonesAreIndependent(t *testing.T) {
	store := &fakeStore{}
	cache := NewDictionaryCache(store, time.Minute)

	d1, err := cache.Get(context.Background())
	require.NoError(t, err)
	d1.AddSizeRule("3x6", "M36")

	d2, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, d2.HasSizeLabel("3x6"))
}

func TestDictionaryCache_Invalidate(t *testing.T) {
	store := &fakeStore{}
	cache := NewDictionaryCache(store, time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	cache.Invalidate()
	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, store.loads)
}

func TestDictionaryCache_ZeroTTLAlwaysLoads(t *testing.T) {
	store := &fakeStore{}
	cache := NewDictionaryCache(store, 0)

	for i := 0; i < 3; i++ {
		_, err := cache.Get(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, 3, store.loads)
}

func TestDictionaryCache_LoadError(t *testing.T) {
	store := &fakeStore{failAll: true}
	cache := NewDictionaryCache(store, time.Minute)

	_, err := cache.Get(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}
