package port

import "context"

// KVStore is the durable key-value storage the session state is persisted
// to. Get reports absence through the bool, not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
