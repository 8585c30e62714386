package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"skill-matrix/internal/config"
	"skill-matrix/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL  = 600 * time.Second
	pingTimeout = 2 * time.Second
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis is a JSON cache that fails open: when the server cannot be reached at
// startup every read is a miss and every write is a no-op.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger

	warnedUnavailable atomic.Bool
}

func NewRedis(ctx context.Context, cfg config.RedisConfig, log logger.Logger) *Redis {
	if log == nil {
		log = logger.NewNop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn(ctx, "redis unavailable, bypassing cache", logger.String("addr", client.Options().Addr), logger.Err(err))
		_ = client.Close()
		return &Redis{ttl: ttlOrDefault(cfg.TTL), log: log}
	}

	return &Redis{client: client, ttl: ttlOrDefault(cfg.TTL), log: log}
}

// NewRedisFromClient wraps an existing client without pinging it.
func NewRedisFromClient(client *redis.Client, ttl time.Duration, log logger.Logger) *Redis {
	if log == nil {
		log = logger.NewNop()
	}
	return &Redis{client: client, ttl: ttlOrDefault(ttl), log: log}
}

func ttlOrDefault(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return defaultTTL
	}
	return ttl
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) warnUnavailableOnce(ctx context.Context, err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		r.log.Warn(ctx, "redis command failed, bypassing cache", logger.Err(err))
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(ctx, err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key. A non-positive ttl uses the configured one.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(ctx, err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if !r.Available() || len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.warnUnavailableOnce(ctx, err)
		return err
	}
	return nil
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}
