package feed

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
)

const key = "latest_stocks"

type KVRepository struct {
	c kv.Conn
}

func NewKVRepository(c kv.Conn) *KVRepository {
	return &KVRepository{c: c}
}

func (r *KVRepository) Append(ctx context.Context, entry models.FeedEntry) error {
	b, err := entry.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode feed entry: %w", err)
	}
	if err := r.c.RPush(ctx, key, b); err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	return nil
}

func (r *KVRepository) Latest(ctx context.Context, limit int) ([][]byte, error) {
	if limit <= 0 {
		return [][]byte{}, nil
	}

	recs, err := r.c.LRange(ctx, key, -int64(limit), -1)
	if err != nil {
		return nil, fmt.Errorf("kv error: %w", err)
	}
	slices.Reverse(recs)
	return recs, nil
}
