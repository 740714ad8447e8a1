package upstream

import (
	"context"
	"log/slog"
)

// Store is the subset of the Redis cache the gateway relies on.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, key string) error
}

// cached returns the value stored at key, or calls fetch and stores its result.
// Store errors are logged and never fail the call. A nil store disables caching.
func cached[T any](ctx context.Context, store Store, key string, fetch func(context.Context) (T, error)) (T, error) {
	if store != nil {
		var hit T
		ok, err := store.Get(ctx, key, &hit)
		if err != nil {
			slog.Warn("cache get failed, dropping entry", "key", key, "err", err)
			if err := store.Delete(ctx, key); err != nil {
				slog.Warn("cache delete failed", "key", key, "err", err)
			}
		} else if ok {
			return hit, nil
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		return v, err
	}

	if store != nil {
		if err := store.Set(ctx, key, v); err != nil {
			slog.Warn("cache set failed", "key", key, "err", err)
		}
	}
	return v, nil
}
