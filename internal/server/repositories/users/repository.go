// Package users declares the storage contract for trader accounts and its
// kv-backed implementation. Accounts live in the hash user_<id>.
package users

import "context"

type Repository interface {
	// Create stores the password of a new user. It fails with
	// common.ErrorAlreadyExists if credentials are already on record.
	Create(ctx context.Context, userID, password string) error
	// Password returns the stored password or common.ErrorNotFound.
	Password(ctx context.Context, userID string) (string, error)

	Balance(ctx context.Context, userID string) (float64, error)
	SetBalance(ctx context.Context, userID string, balance float64) error

	// PrivateStockID and PublicStockID return common.ErrorNotFound when the
	// user has no listing of that tier.
	PrivateStockID(ctx context.Context, userID string) (string, error)
	PublicStockID(ctx context.Context, userID string) (string, error)
	SetPrivateStockID(ctx context.Context, userID, stockID string) error
	SetPublicStockID(ctx context.Context, userID, stockID string) error
}
