package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MikeRez0/waiterdesk/internal/core/domain"
	"github.com/MikeRez0/waiterdesk/internal/core/port"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const keyPrefix = "waiterdesk:catalog:"

// CatalogCache wraps a repository and keeps catalog lookups by food name in
// Redis. Cache failures fall through to the wrapped repository.
type CatalogCache struct {
	port.Repository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCatalogCache(ctx context.Context, repo port.Repository, addr string, ttl time.Duration,
	log *zap.Logger) (*CatalogCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &CatalogCache{Repository: repo, client: client, ttl: ttl, logger: log}, nil
}

func catalogKey(foodName string) string {
	return keyPrefix + foodName
}

func encodeEntries(entries []*domain.CatalogEntry) ([]byte, error) {
	return json.Marshal(entries)
}

func decodeEntries(data []byte) ([]*domain.CatalogEntry, error) {
	var entries []*domain.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *CatalogCache) ListCatalogEntriesByFoodName(ctx context.Context, foodName string) ([]*domain.CatalogEntry, error) {
	key := catalogKey(foodName)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		entries, err := decodeEntries(data)
		if err == nil {
			return entries, nil
		}
		c.logger.Warn("bad cached catalog value", zap.String("key", key), zap.Error(err))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("catalog cache get", zap.String("key", key), zap.Error(err))
	}

	entries, err := c.Repository.ListCatalogEntriesByFoodName(ctx, foodName)
	if err != nil {
		return nil, err
	}

	if data, err := encodeEntries(entries); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("catalog cache set", zap.String("key", key), zap.Error(err))
		}
	}
	return entries, nil
}

func (c *CatalogCache) CreateCatalogEntry(ctx context.Context, entry *domain.CatalogEntry) (*domain.CatalogEntry, error) {
	created, err := c.Repository.CreateCatalogEntry(ctx, entry)
	if err != nil {
		return nil, err
	}
	if err := c.client.Del(ctx, catalogKey(entry.FoodName)).Err(); err != nil {
		c.logger.Warn("catalog cache invalidate", zap.String("food", entry.FoodName), zap.Error(err))
	}
	return created, nil
}

func (c *CatalogCache) Close() error {
	return c.client.Close()
}
