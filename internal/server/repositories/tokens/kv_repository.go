package tokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
)

const keyPrefix = "tokens_"

type KVRepository struct {
	c kv.Conn
}

func NewKVRepository(c kv.Conn) *KVRepository {
	return &KVRepository{c: c}
}

func (r *KVRepository) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := r.c.SetEx(ctx, keyPrefix+token, userID, ttl); err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	return nil
}

func (r *KVRepository) UserID(ctx context.Context, token string) (string, error) {
	v, err := r.c.Get(ctx, keyPrefix+token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("kv error: %w", err)
	}
	if v == "" {
		return "", common.ErrorNotFound
	}
	return v, nil
}
