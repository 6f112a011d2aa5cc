package rediscache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/piotrmaz/nvpApp/internal/application/consumable"
	"github.com/piotrmaz/nvpApp/internal/application/reconciliation"
)

var _ reconciliation.ReadCache = (*Cache)(nil)
var _ consumable.CacheInvalidator = (*Cache)(nil)

// Cache adaptador de lectura sobre Redis para consultas calientes
// (stock bajo). El ledger nunca depende de él; es solo una caché
// read-through que los escritores invalidan al confirmar.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get devuelve el valor cacheado o nil, nil si la clave no existe.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

// Set guarda el valor con TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Del invalida claves tras una escritura del ledger.
func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...).Err()
}
