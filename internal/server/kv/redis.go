package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/redis/go-redis/v9"
)

// redisPoolSize matches the connection cap of the deployed service.
const redisPoolSize = 100

// RedisStore is the production backend.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the server described by a redis:// URL and
// checks it answers PING.
func NewRedisStore(ctx context.Context, dsn string) (*RedisStore, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = redisPoolSize
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// WithConn pins one pooled connection for the duration of fn. go-redis
// checks a connection out lazily on the first command, so a PING takes it
// before fn runs.
func (s *RedisStore) WithConn(ctx context.Context, fn func(ctx context.Context, c Conn) error) error {
	conn := s.client.Conn()
	defer conn.Close()

	if err := conn.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis conn: %w", err)
	}

	return fn(ctx, &redisConn{cmd: conn})
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// redisCmds is the slice of the go-redis command set the contract needs.
// Both *redis.Client and *redis.Conn satisfy it.
type redisCmds interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	HSetNX(ctx context.Context, key, field string, value interface{}) *redis.BoolCmd
	HExists(ctx context.Context, key, field string) *redis.BoolCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

type redisConn struct {
	cmd redisCmds
}

func mapRedisErr(err error) error {
	if errors.Is(err, redis.Nil) {
		return common.ErrorNotFound
	}
	return err
}

func (c *redisConn) HGet(ctx context.Context, key, field string) (string, error) {
	v, err := c.cmd.HGet(ctx, key, field).Result()
	if err != nil {
		return "", mapRedisErr(err)
	}
	return v, nil
}

func (c *redisConn) HGetBytes(ctx context.Context, key, field string) ([]byte, error) {
	v, err := c.cmd.HGet(ctx, key, field).Bytes()
	if err != nil {
		return nil, mapRedisErr(err)
	}
	return v, nil
}

func (c *redisConn) HSet(ctx context.Context, key, field, value string) error {
	return c.cmd.HSet(ctx, key, field, value).Err()
}

func (c *redisConn) HSetBytes(ctx context.Context, key, field string, value []byte) error {
	return c.cmd.HSet(ctx, key, field, value).Err()
}

func (c *redisConn) HSetNX(ctx context.Context, key, field, value string) (bool, error) {
	return c.cmd.HSetNX(ctx, key, field, value).Result()
}

func (c *redisConn) HExists(ctx context.Context, key, field string) (bool, error) {
	return c.cmd.HExists(ctx, key, field).Result()
}

func (c *redisConn) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.cmd.Set(ctx, key, value, ttl).Err()
}

func (c *redisConn) Get(ctx context.Context, key string) (string, error) {
	v, err := c.cmd.Get(ctx, key).Result()
	if err != nil {
		return "", mapRedisErr(err)
	}
	return v, nil
}

func (c *redisConn) RPush(ctx context.Context, key string, value []byte) error {
	return c.cmd.RPush(ctx, key, value).Err()
}

func (c *redisConn) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	vals, err := c.cmd.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, mapRedisErr(err)
	}

	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		out = append(out, []byte(v))
	}
	return out, nil
}
