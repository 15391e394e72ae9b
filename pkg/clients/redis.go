package clients

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/products-backend/internal/cfg"
	"github.com/DRSN-tech/products-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// RedisClient оборачивает go-redis и добавляет пространство имён ключей.
type RedisClient struct {
	Client *r.Client
	prefix string
	addr   string
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		PoolSize:     cfg.PoolSize,
	})

	return &RedisClient{
		Client: client,
		prefix: strings.TrimSuffix(cfg.KeyPrefix, ":"),
		addr:   cfg.Addr,
	}
}

// Key собирает ключ из частей через ":" с учётом REDIS_KEY_PREFIX.
func (c *RedisClient) Key(parts ...string) string {
	key := strings.Join(parts, ":")
	if c.prefix == "" {
		return key
	}

	return c.prefix + ":" + key
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("redis %s: %w", c.addr, err))
	}

	return nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
