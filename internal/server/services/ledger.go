package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/lockarena"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// LedgerService creates and reads listings, the per-user stock pointers
// and the public feed.
type LedgerService struct {
	repomanager repomanager.RepositoryManager
	stockLocks  *lockarena.Arena
	userLocks   *lockarena.Arena
	logger      logging.Logger
	newID       func() string
}

func NewLedgerService(m repomanager.RepositoryManager, stockLocks, userLocks *lockarena.Arena, logger logging.Logger) *LedgerService {
	return &LedgerService{
		repomanager: m,
		stockLocks:  stockLocks,
		userLocks:   userLocks,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// CreateListing writes a private tier and, when publicPrice is not nil, a
// public tier plus a feed entry. Prices must be validated by the caller.
//
// The new stock ids and the seller are locked for the whole write, so two
// concurrent creations by one seller cannot both pass the uniqueness check.
// The writes themselves are separate store calls: a reader that does not
// lock may see the stock records before the user's pointer to them.
func (s *LedgerService) CreateListing(ctx context.Context, c kv.Conn, sellerID string, info models.VaccineInfo, privatePrice float64, publicPrice *float64) (*models.Vaccine, error) {
	ids := []string{s.newID()}
	if publicPrice != nil {
		ids = append(ids, s.newID())
	}

	unlockStocks := s.stockLocks.Acquire(ids...)
	defer unlockStocks()
	unlockSeller := s.userLocks.Acquire(sellerID)
	defer unlockSeller()

	usersRepo := s.repomanager.Users(c)
	stocksRepo := s.repomanager.Stocks(c)

	_, err := usersRepo.PrivateStockID(ctx, sellerID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("vaccine already exists for this user: %w", common.ErrorAlreadyExists)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, err
	}

	info.SellerID = sellerID
	v := &models.Vaccine{Info: info, Private: models.SellInfo{ID: ids[0], Price: privatePrice}}

	if err := stocksRepo.Save(ctx, v.Private.ID, info, privatePrice); err != nil {
		return nil, err
	}
	if err := usersRepo.SetPrivateStockID(ctx, sellerID, v.Private.ID); err != nil {
		return nil, err
	}

	if publicPrice == nil {
		return v, nil
	}

	v.Public = &models.SellInfo{ID: ids[1], Price: *publicPrice}
	if err := stocksRepo.Save(ctx, v.Public.ID, info, *publicPrice); err != nil {
		return nil, err
	}
	if err := usersRepo.SetPublicStockID(ctx, sellerID, v.Public.ID); err != nil {
		return nil, err
	}
	if err := s.repomanager.Feed(c).Append(ctx, models.FeedEntry{Name: info.Name, StockID: v.Public.ID}); err != nil {
		return nil, err
	}

	return v, nil
}

// GetListing returns the info and current price of a stock. A missing info
// or price record both mean the stock does not exist.
func (s *LedgerService) GetListing(ctx context.Context, c kv.Conn, stockID string) (models.VaccineInfo, float64, error) {
	repo := s.repomanager.Stocks(c)

	info, err := repo.Info(ctx, stockID)
	if err != nil {
		return models.VaccineInfo{}, 0, err
	}
	price, err := repo.Price(ctx, stockID)
	if err != nil {
		return models.VaccineInfo{}, 0, err
	}
	return info, price, nil
}

// Price returns the current price of a stock.
func (s *LedgerService) Price(ctx context.Context, c kv.Conn, stockID string) (float64, error) {
	return s.repomanager.Stocks(c).Price(ctx, stockID)
}

// SetPrice overwrites the price unconditionally.
func (s *LedgerService) SetPrice(ctx context.Context, c kv.Conn, stockID string, price float64) error {
	return s.repomanager.Stocks(c).SetPrice(ctx, stockID, price)
}

// GetUserListing returns the user's listing with current prices. The public
// tier is included only when the user has one on record.
func (s *LedgerService) GetUserListing(ctx context.Context, c kv.Conn, userID string) (*models.Vaccine, error) {
	usersRepo := s.repomanager.Users(c)

	privateID, err := usersRepo.PrivateStockID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("sell info not found for user: %w", common.ErrorNotFound)
		}
		return nil, err
	}

	info, privatePrice, err := s.GetListing(ctx, c, privateID)
	if err != nil {
		return nil, err
	}
	v := &models.Vaccine{Info: info, Private: models.SellInfo{ID: privateID, Price: privatePrice}}

	publicID, err := usersRepo.PublicStockID(ctx, userID)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return v, nil
	case err != nil:
		return nil, err
	}

	publicPrice, err := s.Price(ctx, c, publicID)
	if err != nil {
		return nil, err
	}
	v.Public = &models.SellInfo{ID: publicID, Price: publicPrice}
	return v, nil
}

// LatestPublic returns up to limit feed entries, most recent first.
// Records that fail to decode are logged and skipped.
func (s *LedgerService) LatestPublic(ctx context.Context, c kv.Conn, limit int) ([]models.FeedEntry, error) {
	recs, err := s.repomanager.Feed(c).Latest(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]models.FeedEntry, 0, len(recs))
	for _, b := range recs {
		var e models.FeedEntry
		if err := e.UnmarshalBinary(b); err != nil {
			s.logger.Warn(ctx, "failed to decode list record", "error", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
