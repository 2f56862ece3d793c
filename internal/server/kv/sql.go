package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/dbx"
	"github.com/dmitrijs2005/vaccx/internal/server/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect selects the SQL driver and migration set.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func (d Dialect) driver() string {
	if d == DialectSQLite {
		return "sqlite"
	}
	return "pgx"
}

func (d Dialect) gooseDialect() string {
	if d == DialectSQLite {
		return "sqlite3"
	}
	return "pgx"
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations for dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect.gooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, string(dialect)); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SQLStore emulates the contract on three tables: kv_hash, kv_string and
// kv_list. Queries use $N placeholders, which both pgx and modernc sqlite
// accept.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// OpenSQLStore opens the database, checks it is reachable and migrates it.
func OpenSQLStore(ctx context.Context, dialect Dialect, dsn string) (*SQLStore, error) {
	db, err := sql.Open(dialect.driver(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}
	if dialect == DialectSQLite {
		// one writer; also keeps a :memory: database alive across calls
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLStore(db, dialect), nil
}

// NewSQLStore wraps an already migrated database.
func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

// WithConn pins one pooled *sql.Conn for the duration of fn.
func (s *SQLStore) WithConn(ctx context.Context, fn func(ctx context.Context, c Conn) error) error {
	return dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		return fn(ctx, &sqlConn{db: conn, now: s.now})
	})
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

type sqlConn struct {
	db  dbx.DBTX
	now func() time.Time
}

func (c *sqlConn) HGet(ctx context.Context, key, field string) (string, error) {
	b, err := c.HGetBytes(ctx, key, field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *sqlConn) HGetBytes(ctx context.Context, key, field string) ([]byte, error) {
	query := `SELECT value FROM kv_hash WHERE name = $1 AND field = $2`

	var v []byte
	if err := c.db.QueryRowContext(ctx, query, key, field).Scan(&v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (c *sqlConn) HSet(ctx context.Context, key, field, value string) error {
	return c.HSetBytes(ctx, key, field, []byte(value))
}

func (c *sqlConn) HSetBytes(ctx context.Context, key, field string, value []byte) error {
	query :=
		`INSERT INTO kv_hash (name, field, value) VALUES ($1, $2, $3)
		 ON CONFLICT (name, field) DO UPDATE SET value = excluded.value`

	if _, err := c.db.ExecContext(ctx, query, key, field, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (c *sqlConn) HSetNX(ctx context.Context, key, field, value string) (bool, error) {
	query :=
		`INSERT INTO kv_hash (name, field, value) VALUES ($1, $2, $3)
		 ON CONFLICT (name, field) DO NOTHING`

	res, err := c.db.ExecContext(ctx, query, key, field, []byte(value))
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n == 1, nil
}

func (c *sqlConn) HExists(ctx context.Context, key, field string) (bool, error) {
	query := `SELECT 1 FROM kv_hash WHERE name = $1 AND field = $2`

	var one int
	if err := c.db.QueryRowContext(ctx, query, key, field).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return true, nil
}

// SetEx stores key with a deadline. Expired rows have no native TTL to
// remove them, so every write also prunes what has already expired.
func (c *sqlConn) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	now := c.now()
	if _, err := c.db.ExecContext(ctx, `DELETE FROM kv_string WHERE expires_at <= $1`, now.UnixMilli()); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	query :=
		`INSERT INTO kv_string (name, value, expires_at) VALUES ($1, $2, $3)
		 ON CONFLICT (name) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`

	expires := now.Add(ttl).UnixMilli()
	if _, err := c.db.ExecContext(ctx, query, key, value, expires); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (c *sqlConn) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value, expires_at FROM kv_string WHERE name = $1`

	var (
		v       string
		expires int64
	)
	if err := c.db.QueryRowContext(ctx, query, key).Scan(&v, &expires); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}

	if now := c.now().UnixMilli(); now >= expires {
		del := `DELETE FROM kv_string WHERE name = $1 AND expires_at <= $2`
		if _, err := c.db.ExecContext(ctx, del, key, now); err != nil {
			return "", fmt.Errorf("db error: %w", err)
		}
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (c *sqlConn) RPush(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_list (name, value) VALUES ($1, $2)`

	if _, err := c.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (c *sqlConn) LRange(ctx context.Context, key string, start, stop int64) ([][]byte, error) {
	var n int64
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_list WHERE name = $1`, key).Scan(&n); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	lo, hi, ok := normalizeRange(start, stop, n)
	if !ok {
		return [][]byte{}, nil
	}

	query :=
		`SELECT value FROM kv_list WHERE name = $1
		 ORDER BY id
		 LIMIT $2 OFFSET $3`

	rows, err := c.db.QueryContext(ctx, query, key, hi-lo, lo)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([][]byte, 0, hi-lo)
	for rows.Next() {
		var v []byte
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
