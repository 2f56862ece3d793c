package kv

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRange(t *testing.T) {
	tests := []struct {
		name        string
		start, stop int64
		n           int64
		lo, hi      int64
		ok          bool
	}{
		{"empty list", 0, -1, 0, 0, 0, false},
		{"whole list", 0, -1, 5, 0, 5, true},
		{"tail two", -2, -1, 5, 3, 5, true},
		{"start before head clamps", -10, -1, 5, 0, 5, true},
		{"stop past tail clamps", 2, 100, 5, 2, 5, true},
		{"start past tail", 7, 9, 5, 0, 0, false},
		{"inverted", 3, 1, 5, 0, 0, false},
		{"single", 4, 4, 5, 4, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, ok := normalizeRange(tt.start, tt.stop, tt.n)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.lo, lo)
				assert.Equal(t, tt.hi, hi)
			}
		})
	}
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), "mem://")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*MemoryStore)
	assert.True(t, ok)
}

func TestOpen_SQLiteMemory(t *testing.T) {
	s, err := Open(context.Background(), "sqlite://")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(*SQLStore)
	assert.True(t, ok)
}

func TestOpen_UnsupportedScheme(t *testing.T) {
	_, err := Open(context.Background(), "ftp://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported storage scheme")
}

func TestSqlitePath(t *testing.T) {
	u, _ := url.Parse("sqlite:///var/lib/vaccx.db")
	assert.Equal(t, "/var/lib/vaccx.db", sqlitePath(u))

	u, _ = url.Parse("sqlite://")
	assert.Equal(t, ":memory:", sqlitePath(u))

	u, _ = url.Parse("sqlite://data.db?_pragma=busy_timeout(5000)")
	assert.Equal(t, "data.db?_pragma=busy_timeout(5000)", sqlitePath(u))
}

func TestMemoryStore_WithConnCancelledContext(t *testing.T) {
	m := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := m.WithConn(ctx, func(context.Context, Conn) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemoryStore_WithConnPropagatesError(t *testing.T) {
	m := NewMemoryStore()
	boom := errors.New("boom")

	err := m.WithConn(context.Background(), func(context.Context, Conn) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	in := []byte("abc")
	require.NoError(t, m.HSetBytes(ctx, "k", "f", in))
	in[0] = 'x'

	out, err := m.HGetBytes(ctx, "k", "f")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	out[0] = 'y'
	again, err := m.HGetBytes(ctx, "k", "f")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestRedact(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"redis://:s3cret@localhost:6379/0", "redis://:xxxxx@localhost:6379/0"},
		{"postgres://app:s3cret@db:5432/vaccx?sslmode=disable", "postgres://app:xxxxx@db:5432/vaccx?sslmode=disable"},
		{"postgres://db/vaccx?password=s3cret&user=app", "postgres://db/vaccx?password=xxxxx&user=app"},
		{"redis://localhost:6379/0", "redis://localhost:6379/0"},
		{"::bad", "<invalid dsn>"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got := Redact(tt.dsn)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "s3cret")
		})
	}
}
