package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/utils"
)

// Without redis the cache must behave as a pass-through: every Get misses
// and mutations are no-ops, on both a nil pointer and a nil client.
func TestMenuCacheDisabled(t *testing.T) {
	utils.InitLogger()
	ctx := context.Background()
	items := []models.MenuItem{{ID: 1, Name: "Arepa", Price: 10000, RestaurantID: 7}}

	var nilCache *MenuCache
	got, ok := nilCache.Get(ctx, 7)
	assert.False(t, ok)
	assert.Nil(t, got)
	nilCache.Set(ctx, 7, items)
	nilCache.Invalidate(ctx, 7)

	noClient := NewMenuCache(nil, 0)
	got, ok = noClient.Get(ctx, 7)
	assert.False(t, ok)
	assert.Nil(t, got)
	noClient.Set(ctx, 7, items)
	noClient.Invalidate(ctx, 7)
}

func TestMenuKey(t *testing.T) {
	assert.Equal(t, "menu:42", menuKey(42))
}
