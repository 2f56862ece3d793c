package kv

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
)

type stringEntry struct {
	value   string
	expires time.Time
}

// MemoryStore keeps everything in process memory. Expired strings are
// dropped lazily on read.
type MemoryStore struct {
	mu      sync.Mutex
	hashes  map[string]map[string][]byte
	strings map[string]stringEntry
	lists   map[string][][]byte
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		hashes:  make(map[string]map[string][]byte),
		strings: make(map[string]stringEntry),
		lists:   make(map[string][][]byte),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for expiry. Tests only.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) WithConn(ctx context.Context, fn func(ctx context.Context, c Conn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, m)
}

func (m *MemoryStore) Close() error { return nil }

func (m *MemoryStore) HGet(ctx context.Context, key, field string) (string, error) {
	b, err := m.HGetBytes(ctx, key, field)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (m *MemoryStore) HGetBytes(_ context.Context, key, field string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.hashes[key][field]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryStore) HSet(ctx context.Context, key, field, value string) error {
	return m.HSetBytes(ctx, key, field, []byte(value))
}

func (m *MemoryStore) HSetBytes(_ context.Context, key, field string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hashLocked(key)[field] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) HSetNX(_ context.Context, key, field, value string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.hashLocked(key)
	if _, ok := h[field]; ok {
		return false, nil
	}
	h[field] = []byte(value)
	return true, nil
}

func (m *MemoryStore) HExists(_ context.Context, key, field string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.hashes[key][field]
	return ok, nil
}

func (m *MemoryStore) hashLocked(key string) map[string][]byte {
	h, ok := m.hashes[key]
	if !ok {
		h = make(map[string][]byte)
		m.hashes[key] = h
	}
	return h
}

func (m *MemoryStore) SetEx(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.strings[key] = stringEntry{value: value, expires: m.now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.strings[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	if !m.now().Before(e.expires) {
		delete(m.strings, key)
		return "", common.ErrorNotFound
	}
	return e.value, nil
}

func (m *MemoryStore) RPush(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lists[key] = append(m.lists[key], append([]byte(nil), value...))
	return nil
}

func (m *MemoryStore) LRange(_ context.Context, key string, start, stop int64) ([][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[key]
	lo, hi, ok := normalizeRange(start, stop, int64(len(list)))
	if !ok {
		return [][]byte{}, nil
	}

	out := make([][]byte, 0, hi-lo)
	for _, v := range list[lo:hi] {
		out = append(out, append([]byte(nil), v...))
	}
	return out, nil
}
