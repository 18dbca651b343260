package interfaces

import (
	"context"
	"time"
)

// ICache is a string key-value store with per-key expiry. It backs the
// Pending Order Associations and the Access Token Cache.
//
// Take reads and deletes a key in one step so that a value is consumed at most once.
type ICache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Take(ctx context.Context, key string) (value string, found bool, err error)
}
