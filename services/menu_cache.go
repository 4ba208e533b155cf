package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hpowerco/pedidos-app/models"
	"github.com/hpowerco/pedidos-app/utils"
)

// MenuCache caches a restaurant's menu in redis, keyed by restaurant id,
// with explicit invalidation on every menu mutation. A nil cache or a nil
// client disables caching entirely: every Get is a miss and Set/Invalidate
// are no-ops, so controllers never need to special-case it.
type MenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewMenuCache(client *redis.Client, ttl time.Duration) *MenuCache {
	return &MenuCache{Client: client, TTL: ttl}
}

func menuKey(restaurantID uint) string {
	return "menu:" + strconv.FormatUint(uint64(restaurantID), 10)
}

// Get returns the cached menu for a restaurant. Redis failures count as
// misses; the caller falls back to the database.
func (c *MenuCache) Get(ctx context.Context, restaurantID uint) ([]models.MenuItem, bool) {
	if c == nil || c.Client == nil {
		return nil, false
	}

	payload, err := c.Client.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.ErrorLogger.Printf("menu cache get failed for restaurant %d: %v", restaurantID, err)
		}
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal(payload, &items); err != nil {
		utils.ErrorLogger.Printf("menu cache payload corrupt for restaurant %d: %v", restaurantID, err)
		return nil, false
	}
	return items, true
}

// Set stores a restaurant's menu with the configured TTL.
func (c *MenuCache) Set(ctx context.Context, restaurantID uint, items []models.MenuItem) {
	if c == nil || c.Client == nil {
		return
	}

	payload, err := json.Marshal(items)
	if err != nil {
		utils.ErrorLogger.Printf("menu cache marshal failed for restaurant %d: %v", restaurantID, err)
		return
	}
	if err := c.Client.Set(ctx, menuKey(restaurantID), payload, c.TTL).Err(); err != nil {
		utils.ErrorLogger.Printf("menu cache set failed for restaurant %d: %v", restaurantID, err)
	}
}

// Invalidate drops the cached menu for a restaurant. Called after any
// menu-item mutation and after a restaurant delete.
func (c *MenuCache) Invalidate(ctx context.Context, restaurantID uint) {
	if c == nil || c.Client == nil {
		return
	}
	if err := c.Client.Del(ctx, menuKey(restaurantID)).Err(); err != nil {
		utils.ErrorLogger.Printf("menu cache invalidate failed for restaurant %d: %v", restaurantID, err)
	}
}
