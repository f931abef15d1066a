package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/rchdlps/gerenciador-projetos-sub002/config"
)

// NewRedisFromCentral creates a new Redis client from central config.
func NewRedisFromCentral(cfg config.RedisConfig) (*goredis.Client, error) {
	return NewRedis(FromCentralConfig(cfg))
}

func NewRedis(cfg Config) (*goredis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis addr is empty")
	}

	opts := &goredis.Options{
		Addr:         cfg.Addr,
		Username:     cfg.Username,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout(),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	}

	rdb := goredis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout())
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// AcquireJobLock takes a best-effort distributed lock for a periodic job so
// only one instance runs it per interval. Returns false when another holder
// already owns the lock. Errors are returned so the caller can decide whether
// to run anyway (single-instance deployments work without Redis).
func AcquireJobLock(ctx context.Context, rdb *goredis.Client, name string, ttl time.Duration) (bool, error) {
	ok, err := rdb.SetNX(ctx, "joblock:"+name, time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire job lock %q: %w", name, err)
	}
	return ok, nil
}

// ReleaseJobLock drops the lock early so a retried job does not wait out the TTL.
func ReleaseJobLock(ctx context.Context, rdb *goredis.Client, name string) error {
	return rdb.Del(ctx, "joblock:"+name).Err()
}
