package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/logging"
	"github.com/dmitrijs2005/vaccx/internal/server/config"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/lockarena"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// TradeObserver receives the outcome of every buy attempt that reached the
// listing.
type TradeObserver interface {
	TradeCompleted(price float64)
	TradeRejected(reason string)
}

type nopObserver struct{}

func (nopObserver) TradeCompleted(float64) {}
func (nopObserver) TradeRejected(string)   {}

// Trade rejection reasons reported to the TradeObserver.
const (
	RejectSelfTrade         = "self_trade"
	RejectInsufficientFunds = "insufficient_funds"
)

// CreateVaccineInput is a listing request. PublicPrice is optional.
type CreateVaccineInput struct {
	RNAInfo      string
	Name         string
	PrivatePrice float64
	PublicPrice  *float64
}

// ExchangeService is the exchange engine. Every operation runs on one
// scoped storage handle. Handles are always acquired before stripe locks,
// never while holding one, so a small connection pool cannot deadlock
// against the arenas.
//
// Stocks and users are striped in separate arenas and an operation takes
// the stock arena before the user arena.
type ExchangeService struct {
	store       kv.Store
	repomanager repomanager.RepositoryManager
	sessions    *SessionService
	ledger      *LedgerService
	stockLocks  *lockarena.Arena
	userLocks   *lockarena.Arena
	listLimit   int
	logger      logging.Logger
	observer    TradeObserver
	newUserID   func() string
	newPassword func() (string, error)
}

// Option customizes an ExchangeService.
type Option func(*ExchangeService)

// WithTradeObserver reports buy outcomes to o.
func WithTradeObserver(o TradeObserver) Option {
	return func(s *ExchangeService) { s.observer = o }
}

// NewExchangeService wires the engine with its own lock arenas sized from
// cfg.LockStripes.
func NewExchangeService(store kv.Store, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger, opts ...Option) *ExchangeService {
	stockLocks := lockarena.New(cfg.LockStripes)
	userLocks := lockarena.New(cfg.LockStripes)
	logger = logger.With("module", "exchange")

	s := &ExchangeService{
		store:       store,
		repomanager: m,
		sessions:    NewSessionService(m, cfg),
		ledger:      NewLedgerService(m, stockLocks, userLocks, logger),
		stockLocks:  stockLocks,
		userLocks:   userLocks,
		listLimit:   cfg.ListLimit,
		logger:      logger,
		observer:    nopObserver{},
		newUserID:   uuid.NewString,
		newPassword: func() (string, error) { return common.RandomString(common.PasswordLength) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user with a generated id and password.
func (s *ExchangeService) Register(ctx context.Context) (*models.User, error) {
	password, err := s.newPassword()
	if err != nil {
		return nil, fmt.Errorf("error generating password: %w", err)
	}
	user := &models.User{ID: s.newUserID(), Password: password}

	err = s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		return s.sessions.Register(ctx, c, user.ID, user.Password)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID)
	return user, nil
}

// Login exchanges credentials for a session token.
func (s *ExchangeService) Login(ctx context.Context, userID, password string) (string, error) {
	var token string
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		token, err = s.sessions.Login(ctx, c, userID, password)
		return err
	})
	return token, err
}

// Resolve maps a session token to the user id it was issued for.
func (s *ExchangeService) Resolve(ctx context.Context, token string) (string, error) {
	var userID string
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		userID, err = s.sessions.Resolve(ctx, c, token)
		return err
	})
	return userID, err
}

// validatePrice accepts finite, strictly positive prices only.
func validatePrice(price float64) error {
	if !(price > 0) || math.IsInf(price, 1) {
		return fmt.Errorf("%w: price should be positive", common.ErrorValidation)
	}
	return nil
}

// CreateVaccine validates the request and creates the caller's listing.
func (s *ExchangeService) CreateVaccine(ctx context.Context, userID string, in CreateVaccineInput) (*models.Vaccine, error) {
	if in.RNAInfo == "" {
		return nil, fmt.Errorf("%w: rna info empty", common.ErrorValidation)
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: vaccine name empty", common.ErrorValidation)
	}
	if err := validatePrice(in.PrivatePrice); err != nil {
		return nil, err
	}
	if in.PublicPrice != nil {
		if err := validatePrice(*in.PublicPrice); err != nil {
			return nil, err
		}
	}

	var v *models.Vaccine
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		ctx = context.WithoutCancel(ctx)

		var err error
		info := models.VaccineInfo{RNAInfo: in.RNAInfo, Name: in.Name}
		v, err = s.ledger.CreateListing(ctx, c, userID, info, in.PrivatePrice, in.PublicPrice)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "vaccine created", "user_id", userID, "private_stock_id", v.Private.ID, "public", v.Public != nil)
	return v, nil
}

// Buy moves the current price of stockID from buyer to seller and doubles
// the price. It returns the listing info as it was stored.
//
// Locks: the stock, then both parties in stripe order. All three are
// held until the balances and the price are written. Once the handle is
// acquired the trade runs to completion even if ctx is cancelled.
func (s *ExchangeService) Buy(ctx context.Context, buyerID, stockID string) (models.VaccineInfo, error) {
	start := time.Now()

	var (
		info  models.VaccineInfo
		price float64
	)
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		ctx = context.WithoutCancel(ctx)

		unlockStock := s.stockLocks.Acquire(stockID)
		defer unlockStock()

		var err error
		info, _, err = s.ledger.GetListing(ctx, c, stockID)
		if err != nil {
			return err
		}
		sellerID := info.SellerID
		if sellerID == buyerID {
			s.observer.TradeRejected(RejectSelfTrade)
			return common.ErrorSelfTrade
		}

		// Acquire takes the two stripes in ascending stripe index, not in
		// key order; that order is global, so swapped pairs cannot deadlock.
		unlockUsers := s.userLocks.Acquire(buyerID, sellerID)
		defer unlockUsers()

		usersRepo := s.repomanager.Users(c)

		buyerBalance, err := usersRepo.Balance(ctx, buyerID)
		if err != nil {
			return err
		}
		sellerBalance, err := usersRepo.Balance(ctx, sellerID)
		if err != nil {
			return err
		}
		price, err = s.ledger.Price(ctx, c, stockID)
		if err != nil {
			return err
		}

		// written so that NaN on either side fails the check
		if !(buyerBalance >= price) {
			s.observer.TradeRejected(RejectInsufficientFunds)
			return common.ErrorInsufficientFunds
		}

		if err := usersRepo.SetBalance(ctx, buyerID, buyerBalance-price); err != nil {
			return err
		}
		if err := usersRepo.SetBalance(ctx, sellerID, sellerBalance+price); err != nil {
			return err
		}
		return s.ledger.SetPrice(ctx, c, stockID, price*2)
	})
	if err != nil {
		return models.VaccineInfo{}, err
	}

	s.observer.TradeCompleted(price)
	s.logger.Info(ctx, "buy completed",
		"buyer_id", buyerID, "seller_id", info.SellerID, "stock_id", stockID,
		"price", price, "duration", time.Since(start))
	return info, nil
}

// Balance returns the user's current balance. Reads take no lock and may
// observe a value mid-trade.
func (s *ExchangeService) Balance(ctx context.Context, userID string) (float64, error) {
	var b float64
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		b, err = s.repomanager.Users(c).Balance(ctx, userID)
		return err
	})
	return b, err
}

// GetPrice returns the current price of a stock.
func (s *ExchangeService) GetPrice(ctx context.Context, stockID string) (float64, error) {
	var p float64
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		p, err = s.ledger.Price(ctx, c, stockID)
		return err
	})
	return p, err
}

// List returns the most recent public listings, newest first.
func (s *ExchangeService) List(ctx context.Context) ([]models.FeedEntry, error) {
	var out []models.FeedEntry
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		out, err = s.ledger.LatestPublic(ctx, c, s.listLimit)
		return err
	})
	return out, err
}

// GetUserVaccine returns the caller's own listing.
func (s *ExchangeService) GetUserVaccine(ctx context.Context, userID string) (*models.Vaccine, error) {
	var v *models.Vaccine
	err := s.store.WithConn(ctx, func(ctx context.Context, c kv.Conn) error {
		var err error
		v, err = s.ledger.GetUserListing(ctx, c, userID)
		return err
	})
	return v, err
}
