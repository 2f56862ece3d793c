package metadata

import (
	"context"
)

// Well-known keys kept by the CLI between runs.
const (
	KeyUserID       = "user_id"
	KeyUserPassword = "user_password"
	KeyToken        = "token"
)

// Repository is a small string key-value table in the local store.
// Get returns common.ErrorNotFound for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
