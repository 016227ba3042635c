// Package cache adaptadores de ports.CatalogCache.
package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/jhoicas/boutique-api/internal/application/ports"
)

// generationKey contador que versiona todas las claves del catálogo.
// Invalidar es un INCR: las entradas de la generación anterior quedan huérfanas y expiran por TTL.
const generationKey = "catalog:gen"

// RedisCatalogCache implementa ports.CatalogCache sobre Redis.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

var (
	_ ports.CatalogCache = (*RedisCatalogCache)(nil)
	_ ports.CatalogCache = NoopCache{}
)

// NewRedisCatalogCache conecta con url (redis://...) y verifica con PING.
func NewRedisCatalogCache(ctx context.Context, url string, ttl time.Duration, log zerolog.Logger) (*RedisCatalogCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: REDIS_URL inválida: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: no se pudo conectar a Redis: %w", err)
	}
	return NewRedisCatalogCacheWithClient(client, ttl, log), nil
}

// NewRedisCatalogCacheWithClient usa un cliente existente.
func NewRedisCatalogCacheWithClient(client *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisCatalogCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisCatalogCache{client: client, ttl: ttl, log: log}
}

func (c *RedisCatalogCache) Get(ctx context.Context, key string) ([]byte, bool) {
	full, err := c.key(ctx, key)
	if err != nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, full).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: get")
		return nil, false
	}
	return data, true
}

func (c *RedisCatalogCache) Set(ctx context.Context, key string, value []byte) {
	full, err := c.key(ctx, key)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, full, value, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: set")
	}
}

func (c *RedisCatalogCache) InvalidateCatalog(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Error().Err(err).Msg("cache: invalidar catálogo")
	}
}

// Close cierra el cliente.
func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}

func (c *RedisCatalogCache) key(ctx context.Context, key string) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("cache: leer generación")
		return "", err
	}
	return "catalog:" + strconv.FormatInt(gen, 10) + ":" + key, nil
}

// NoopCache caché deshabilitada (REDIS_URL vacío): siempre "miss".
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []byte)        {}
func (NoopCache) InvalidateCatalog(context.Context)          {}
