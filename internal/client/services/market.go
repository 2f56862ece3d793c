package services

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/client/client"
	"github.com/dmitrijs2005/vaccx/internal/client/models"
)

// PriceUpdate is reported by Monitor whenever the observed price changes.
// Previous is zero for the first observation.
type PriceUpdate struct {
	StockID  string
	Price    float64
	Previous float64
	At       time.Time
}

// MarketService wraps the trading calls. Calls that need a session retry
// once after logging in again with cached credentials when the server
// rejects the token.
type MarketService interface {
	Balance(ctx context.Context) (float64, error)
	List(ctx context.Context) ([]models.Listing, error)
	Create(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error)
	Buy(ctx context.Context, stockID string) (string, error)
	Price(ctx context.Context, stockID string) (float64, error)
	MyVaccine(ctx context.Context) (*models.Vaccine, error)
	Monitor(ctx context.Context, stockID string, interval time.Duration, onUpdate func(PriceUpdate)) error
}

type marketService struct {
	client client.Client
	auth   AuthService
	now    func() time.Time
}

func NewMarketService(c client.Client, auth AuthService) MarketService {
	return &marketService{client: c, auth: auth, now: time.Now}
}

func withSession[T any](ctx context.Context, m *marketService, call func() (T, error)) (T, error) {
	v, err := call()
	if !errors.Is(err, client.ErrUnauthorized) {
		return v, err
	}
	if rerr := m.auth.Reauthenticate(ctx); rerr != nil {
		return v, err
	}
	return call()
}

func (m *marketService) Balance(ctx context.Context) (float64, error) {
	return withSession(ctx, m, func() (float64, error) { return m.client.Balance(ctx) })
}

func (m *marketService) List(ctx context.Context) ([]models.Listing, error) {
	return m.client.List(ctx)
}

func (m *marketService) Create(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error) {
	return withSession(ctx, m, func() (*models.Vaccine, error) { return m.client.CreateVaccine(ctx, v) })
}

func (m *marketService) Buy(ctx context.Context, stockID string) (string, error) {
	return withSession(ctx, m, func() (string, error) { return m.client.Buy(ctx, stockID) })
}

func (m *marketService) Price(ctx context.Context, stockID string) (float64, error) {
	return m.client.GetPrice(ctx, stockID)
}

func (m *marketService) MyVaccine(ctx context.Context) (*models.Vaccine, error) {
	return withSession(ctx, m, func() (*models.Vaccine, error) { return m.client.GetUserVaccine(ctx) })
}

// Monitor polls the price of stockID every interval and calls onUpdate on
// the first observation and on every change. Unavailable server errors are
// skipped; any other error stops the loop. It returns nil once ctx is done.
func (m *marketService) Monitor(ctx context.Context, stockID string, interval time.Duration, onUpdate func(PriceUpdate)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		last float64
		seen bool
	)
	for {
		price, err := m.client.GetPrice(ctx, stockID)
		switch {
		case ctx.Err() != nil:
			return nil
		case errors.Is(err, client.ErrUnavailable):
		case err != nil:
			return err
		case !seen || price != last:
			onUpdate(PriceUpdate{StockID: stockID, Price: price, Previous: last, At: m.now()})
			last, seen = price, true
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil
		}
	}
}
