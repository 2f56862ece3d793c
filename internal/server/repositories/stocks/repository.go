// Package stocks stores priced listing instances in the hash stock_<id>
// with the fields price and info.
package stocks

import (
	"context"

	"github.com/dmitrijs2005/vaccx/internal/server/models"
)

type Repository interface {
	// Save writes the price first and the info second; the two writes are
	// not atomic together.
	Save(ctx context.Context, stockID string, info models.VaccineInfo, price float64) error
	// Info and Price return common.ErrorNotFound for unknown stock ids.
	Info(ctx context.Context, stockID string) (models.VaccineInfo, error)
	Price(ctx context.Context, stockID string) (float64, error)
	SetPrice(ctx context.Context, stockID string, price float64) error
}
