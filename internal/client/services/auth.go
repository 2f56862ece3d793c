// Package services contains application services for the exchange CLI.
// This file defines the session service: register, login, token restore and
// the local cache of credentials the server hands out only once.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaccx/internal/client/client"
	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/dmitrijs2005/vaccx/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vaccx/internal/common"
	"github.com/dmitrijs2005/vaccx/internal/dbx"
)

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Register: create an account and cache the generated credentials.
//   - Login: authenticate with the given credentials, or the cached ones when
//     creds is empty, and cache the session token.
//   - Restore: reuse a cached token from a previous run.
//   - Reauthenticate: log in again with cached credentials after the token
//     expired.
//   - Logout: drop the session token, keeping the credentials.
//   - Forget: wipe everything cached locally.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context) (models.Credentials, error)
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Restore(ctx context.Context) (string, bool, error)
	Reauthenticate(ctx context.Context) error
	Logout(ctx context.Context) error
	Forget(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and the local SQLite store.
type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// savedCredentials returns the cached credentials, or client.ErrNotLoggedIn
// when there are none.
func (a *authService) savedCredentials(ctx context.Context) (models.Credentials, error) {
	repo := a.getMetadataRepo()

	userID, err := repo.Get(ctx, metadata.KeyUserID)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Credentials{}, client.ErrNotLoggedIn
	}
	if err != nil {
		return models.Credentials{}, err
	}
	password, err := repo.Get(ctx, metadata.KeyUserPassword)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Credentials{}, client.ErrNotLoggedIn
	}
	if err != nil {
		return models.Credentials{}, err
	}
	return models.Credentials{UserID: userID, Password: password}, nil
}

// saveSession stores credentials and, when non-empty, the token in one
// transaction. An empty token removes any cached one.
func (a *authService) saveSession(ctx context.Context, creds models.Credentials, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		if err := repo.Set(ctx, metadata.KeyUserID, creds.UserID); err != nil {
			return err
		}
		if err := repo.Set(ctx, metadata.KeyUserPassword, creds.Password); err != nil {
			return err
		}
		if token == "" {
			return repo.Delete(ctx, metadata.KeyToken)
		}
		return repo.Set(ctx, metadata.KeyToken, token)
	})
}

// Register creates a new account on the server. The server generates both
// the id and the password, so they are cached before returning.
func (a *authService) Register(ctx context.Context) (models.Credentials, error) {
	creds, err := a.client.Register(ctx)
	if err != nil {
		return models.Credentials{}, err
	}

	a.client.SetToken("")
	if err := a.saveSession(ctx, creds, ""); err != nil {
		return creds, fmt.Errorf("credentials saving error: %w", err)
	}
	return creds, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if creds.UserID == "" {
		saved, err := a.savedCredentials(ctx)
		if err != nil {
			return "", err
		}
		creds = saved
	}

	token, err := a.client.Login(ctx, creds)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, creds, token); err != nil {
		return "", fmt.Errorf("session saving error: %w", err)
	}
	return creds.UserID, nil
}

// Restore loads a cached token into the client. It reports the cached user
// id and whether a token was found; the token may have expired server-side.
func (a *authService) Restore(ctx context.Context) (string, bool, error) {
	repo := a.getMetadataRepo()

	token, err := repo.Get(ctx, metadata.KeyToken)
	if errors.Is(err, common.ErrorNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	userID, err := repo.Get(ctx, metadata.KeyUserID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", false, err
	}

	a.client.SetToken(token)
	return userID, true, nil
}

func (a *authService) Reauthenticate(ctx context.Context) error {
	creds, err := a.savedCredentials(ctx)
	if err != nil {
		return err
	}
	_, err = a.Login(ctx, creds)
	return err
}

func (a *authService) Logout(ctx context.Context) error {
	a.client.SetToken("")
	return a.getMetadataRepo().Delete(ctx, metadata.KeyToken)
}

func (a *authService) Forget(ctx context.Context) error {
	a.client.SetToken("")
	return a.getMetadataRepo().Clear(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
