// Package kv defines the narrow key-value contract the exchange consumes and
// its backends: Redis (the production store), a SQL emulation for
// PostgreSQL and SQLite, and an in-process map used by tests and mem://.
//
// The contract mirrors a Redis subset: hash fields, strings with expiry and
// append-only lists. Every operation is atomic on its own key; nothing spans
// keys.
package kv

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Conn is a scoped storage handle. A Conn must not be used after the
// WithConn callback that produced it returns.
//
// Reads of absent keys or fields return common.ErrorNotFound.
type Conn interface {
	HGet(ctx context.Context, key, field string) (string, error)
	HGetBytes(ctx context.Context, key, field string) ([]byte, error)
	HSet(ctx context.Context, key, field, value string) error
	HSetBytes(ctx context.Context, key, field string, value []byte) error
	// HSetNX sets field only if it does not exist yet and reports whether it did.
	HSetNX(ctx context.Context, key, field, value string) (bool, error)
	HExists(ctx context.Context, key, field string) (bool, error)

	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)

	RPush(ctx context.Context, key string, value []byte) error
	// LRange returns elements start..stop inclusive; negative indices count
	// from the tail, -1 being the last element.
	LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error)
}

// Store hands out scoped connections.
type Store interface {
	// WithConn acquires a handle, runs fn with it and releases the handle on
	// every exit path, including panics.
	WithConn(ctx context.Context, fn func(ctx context.Context, c Conn) error) error
	Close() error
}

// Open picks a backend by DSN scheme:
//
//	redis://host:port/db, rediss://...   Redis
//	postgres://..., postgresql://...     PostgreSQL via pgx, migrated with goose
//	sqlite:///path/to/file.db            SQLite via modernc.org/sqlite, migrated with goose
//	mem://                               in-process map
func Open(ctx context.Context, dsn string) (Store, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse storage dsn: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "redis", "rediss":
		return NewRedisStore(ctx, dsn)
	case "postgres", "postgresql":
		return OpenSQLStore(ctx, DialectPostgres, dsn)
	case "sqlite", "sqlite3":
		return OpenSQLStore(ctx, DialectSQLite, sqlitePath(u))
	case "mem", "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported storage scheme %q", u.Scheme)
	}
}

// Redact returns dsn with any password masked, for logging.
func Redact(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil {
		return "<invalid dsn>"
	}

	q := u.Query()
	if q.Has("password") {
		q.Set("password", "xxxxx")
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}

func sqlitePath(u *url.URL) string {
	path := u.Host + u.Path
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	if path == "" {
		return ":memory:"
	}
	return path
}

// normalizeRange converts Redis-style inclusive, possibly negative indices
// for a list of length n into a half-open [lo, hi) slice window.
// ok is false when the window is empty.
func normalizeRange(start, stop, n int64) (lo, hi int64, ok bool) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop || start >= n {
		return 0, 0, false
	}
	return start, stop + 1, true
}
