package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/productadvisor/backend/internal/domain"
)

func sampleCatalog() []domain.Product {
	return []domain.Product{
		{Identifier: "1", Title: "Essential Shirt", Price: "29.90"},
		{Identifier: "2", Title: "Trail Shorts", Price: "39.90"},
	}
}

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog:feed", sampleCatalog(), time.Minute))

	got, err := c.Get(ctx, "catalog:feed")
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), got)
}

func TestMemoryCache_Miss(t *testing.T) {
	c := NewMemoryCache()

	_, err := c.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog:feed", sampleCatalog(), -time.Second))

	_, err := c.Get(ctx, "catalog:feed")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestMemoryCache_Delete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog:feed", sampleCatalog(), time.Minute))
	require.NoError(t, c.Delete(ctx, "catalog:feed"))

	_, err := c.Get(ctx, "catalog:feed")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Equal(t, 0, c.Size())
}

func TestMemoryCache_GetReturnsCopy(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "catalog:feed", sampleCatalog(), time.Minute))

	got, err := c.Get(ctx, "catalog:feed")
	require.NoError(t, err)
	got[0].Title = "mutated"

	again, err := c.Get(ctx, "catalog:feed")
	require.NoError(t, err)
	assert.Equal(t, "Essential Shirt", again[0].Title)
}
