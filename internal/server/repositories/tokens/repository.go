// Package tokens stores session tokens as tokens_<token> strings holding the
// user id, expired by the store's native TTL.
package tokens

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	// UserID returns common.ErrorNotFound for unknown or expired tokens.
	UserID(ctx context.Context, token string) (string, error)
}
