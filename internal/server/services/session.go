// Package services contains the exchange's business logic. This file
// implements SessionService, which stores credentials and maps opaque
// session tokens to user ids.
package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/server/config"
	"github.com/dmitrijs2005/vaccx/internal/server/kv"
	"github.com/dmitrijs2005/vaccx/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// SessionService works on a caller-provided kv.Conn so it can share one
// storage handle with the rest of an operation.
type SessionService struct {
	repomanager    repomanager.RepositoryManager
	ttl            time.Duration
	defaultBalance float64
	passwordMode   string
	bcryptCost     int
	newToken       func() (string, error)
}

// NewSessionService constructs a SessionService from server config.
func NewSessionService(m repomanager.RepositoryManager, cfg *config.Config) *SessionService {
	return &SessionService{
		repomanager:    m,
		ttl:            cfg.SessionTTL,
		defaultBalance: cfg.DefaultBalance,
		passwordMode:   cfg.PasswordMode,
		bcryptCost:     bcrypt.DefaultCost,
		newToken:       func() (string, error) { return common.RandomString(common.TokenLength) },
	}
}

// Register stores credentials for userID and credits the default balance.
// It fails with common.ErrorAlreadyExists when the id is taken.
func (s *SessionService) Register(ctx context.Context, c kv.Conn, userID, password string) error {
	stored, err := s.storedPassword(password)
	if err != nil {
		return err
	}

	repo := s.repomanager.Users(c)
	if err := repo.Create(ctx, userID, stored); err != nil {
		return err
	}
	if err := repo.SetBalance(ctx, userID, s.defaultBalance); err != nil {
		return fmt.Errorf("error setting balance: %w", err)
	}
	return nil
}

// Login checks the password and issues a fresh token with the configured
// TTL. Earlier tokens of the same user stay valid until they expire.
func (s *SessionService) Login(ctx context.Context, c kv.Conn, userID, password string) (string, error) {
	stored, err := s.repomanager.Users(c).Password(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("user not found: %w", common.ErrorNotFound)
		}
		return "", err
	}

	if !s.checkPassword(stored, password) {
		return "", common.ErrorInvalidPassword
	}

	token, err := s.newToken()
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}
	if err := s.repomanager.Tokens(c).Save(ctx, token, userID, s.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve maps a token to its user id. Empty, unknown and expired tokens
// fail with common.ErrorUnauthenticated.
func (s *SessionService) Resolve(ctx context.Context, c kv.Conn, token string) (string, error) {
	if token == "" {
		return "", fmt.Errorf("%w: %w", common.ErrorUnauthenticated, common.ErrorNoToken)
	}

	userID, err := s.repomanager.Tokens(c).UserID(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", fmt.Errorf("%w: %w", common.ErrorUnauthenticated, common.ErrorInvalidToken)
		}
		return "", err
	}
	return userID, nil
}

func (s *SessionService) storedPassword(password string) (string, error) {
	if s.passwordMode != config.PasswordModeBcrypt {
		return password, nil
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(h), nil
}

func (s *SessionService) checkPassword(stored, candidate string) bool {
	if s.passwordMode == config.PasswordModeBcrypt {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
