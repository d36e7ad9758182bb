package kv

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Redis stores keys under a common prefix so several tools can share one server.
type Redis struct {
	rdb     *goredis.Client
	prefix  string
	timeout time.Duration
}

func NewRedis(addr, prefix string, timeout time.Duration) (*Redis, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb, prefix: prefix, timeout: timeout}, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

func (r *Redis) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	v, err := r.rdb.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(key, value string) error {
	return r.SetMany(map[string]string{key: value})
}

func (r *Redis) SetMany(values map[string]string) error {
	return r.Replace(values)
}

func (r *Redis) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Replace(nil, keys...)
}

// Replace queues the deletes and sets in one MULTI/EXEC block.
func (r *Redis) Replace(values map[string]string, deletes ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	_, err := r.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		if len(deletes) > 0 {
			full := make([]string, 0, len(deletes))
			for _, k := range deletes {
				full = append(full, r.prefix+k)
			}
			pipe.Del(ctx, full...)
		}
		for k, v := range values {
			pipe.Set(ctx, r.prefix+k, v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis write %d key(s), delete %d: %w", len(values), len(deletes), classifyRedisErr(err))
	}
	return nil
}

// classifyRedisErr maps the server's maxmemory rejection onto ErrQuotaExceeded.
func classifyRedisErr(err error) error {
	if strings.Contains(err.Error(), "OOM") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}
	return err
}
