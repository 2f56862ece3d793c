package stocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
)

const (
	keyPrefix = "stock_"

	fieldPrice = "price"
	fieldInfo  = "info"
)

func stockKey(stockID string) string { return keyPrefix + stockID }

type KVRepository struct {
	c kv.Conn
}

func NewKVRepository(c kv.Conn) *KVRepository {
	return &KVRepository{c: c}
}

func (r *KVRepository) Save(ctx context.Context, stockID string, info models.VaccineInfo, price float64) error {
	if err := r.SetPrice(ctx, stockID, price); err != nil {
		return err
	}

	b, err := info.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode info: %w", err)
	}
	if err := r.c.HSetBytes(ctx, stockKey(stockID), fieldInfo, b); err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	return nil
}

func (r *KVRepository) Info(ctx context.Context, stockID string) (models.VaccineInfo, error) {
	var info models.VaccineInfo

	b, err := r.c.HGetBytes(ctx, stockKey(stockID), fieldInfo)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return info, fmt.Errorf("vaccine info not found by id %s: %w", stockID, common.ErrorNotFound)
		}
		return info, fmt.Errorf("kv error: %w", err)
	}

	if err := info.UnmarshalBinary(b); err != nil {
		return info, err
	}
	return info, nil
}

func (r *KVRepository) Price(ctx context.Context, stockID string) (float64, error) {
	s, err := r.c.HGet(ctx, stockKey(stockID), fieldPrice)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, fmt.Errorf("stock price not found by id %s: %w", stockID, common.ErrorNotFound)
		}
		return 0, fmt.Errorf("kv error: %w", err)
	}

	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price of %s: %w", stockID, err)
	}
	return p, nil
}

func (r *KVRepository) SetPrice(ctx context.Context, stockID string, price float64) error {
	v := strconv.FormatFloat(price, 'f', -1, 64)
	if err := r.c.HSet(ctx, stockKey(stockID), fieldPrice, v); err != nil {
		return fmt.Errorf("kv error: %w", err)
	}
	return nil
}
