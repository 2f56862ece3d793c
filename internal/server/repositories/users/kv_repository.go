package users

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
)

const (
	keyPrefix = "user_"

	fieldPassword       = "password"
	fieldBalance        = "balance"
	fieldPrivateStockID = "private_stock_id"
	fieldPublicStockID  = "public_stock_id"
)

func userKey(userID string) string { return keyPrefix + userID }

type KVRepository struct {
	c kv.Conn
}

func NewKVRepository(c kv.Conn) *KVRepository {
	return &KVRepository{c: c}
}

func (r *KVRepository) Create(ctx context.Context, userID, password string) error {
	ok, err := r.c.HSetNX(ctx, userKey(userID), fieldPassword, password)
	if err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	if !ok {
		return common.ErrorAlreadyExists
	}
	return nil
}

func (r *KVRepository) Password(ctx context.Context, userID string) (string, error) {
	return r.getField(ctx, userID, fieldPassword)
}

func (r *KVRepository) Balance(ctx context.Context, userID string) (float64, error) {
	s, err := r.getField(ctx, userID, fieldBalance)
	if err != nil {
		return 0, err
	}
	b, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse balance of %s: %w", userID, err)
	}
	return b, nil
}

func (r *KVRepository) SetBalance(ctx context.Context, userID string, balance float64) error {
	return r.setField(ctx, userID, fieldBalance, strconv.FormatFloat(balance, 'f', -1, 64))
}

func (r *KVRepository) PrivateStockID(ctx context.Context, userID string) (string, error) {
	return r.getField(ctx, userID, fieldPrivateStockID)
}

func (r *KVRepository) PublicStockID(ctx context.Context, userID string) (string, error) {
	return r.getField(ctx, userID, fieldPublicStockID)
}

func (r *KVRepository) SetPrivateStockID(ctx context.Context, userID, stockID string) error {
	return r.setField(ctx, userID, fieldPrivateStockID, stockID)
}

func (r *KVRepository) SetPublicStockID(ctx context.Context, userID, stockID string) error {
	return r.setField(ctx, userID, fieldPublicStockID, stockID)
}

// getField treats an empty stored value the same as an absent one.
func (r *KVRepository) getField(ctx context.Context, userID, field string) (string, error) {
	v, err := r.c.HGet(ctx, userKey(userID), field)
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

func (r *KVRepository) setField(ctx context.Context, userID, field, value string) error {
	if err := r.c.HSet(ctx, userKey(userID), field, value); err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	return nil
}
