// Package redis keeps create-order idempotency keys in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 24 * time.Hour
	// DefaultClaimTTL bounds how long an unfinished request blocks its key.
	DefaultClaimTTL = time.Minute

	keyFormat    = "idem:order:create:%s"
	pendingValue = "pending"
)

// IdempotencyStore maps an idempotency key to the order it created.
//
// A key is first claimed with the value "pending" for at most
// DefaultClaimTTL; Complete replaces it with the order id for the full TTL
// and Release drops it so the client may retry.
type IdempotencyStore struct {
	client   goredis.UniversalClient
	ttl      time.Duration
	claimTTL time.Duration
}

func NewIdempotencyStore(client goredis.UniversalClient, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl, claimTTL: min(ttl, DefaultClaimTTL)}
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr string) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// Reserve claims key. fresh is false when the key was used before; the
// returned id is then the order created by that request. A request still in
// flight under the same key yields a ConcurrencyConflictError.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (kernel.UUID, bool, error) {
	k := fmt.Sprintf(keyFormat, key)

	claimed, err := s.client.SetNX(ctx, k, pendingValue, s.claimTTL).Result()
	if err != nil {
		return kernel.UUID{}, false, err
	}
	if claimed {
		return kernel.UUID{}, true, nil
	}

	value, err := s.client.Get(ctx, k).Result()
	switch {
	case errors.Is(err, goredis.Nil):
		return kernel.UUID{}, false, errs.NewConcurrencyConflictError("idempotency_key", err)
	case err != nil:
		return kernel.UUID{}, false, err
	case value == pendingValue:
		return kernel.UUID{}, false, errs.NewConcurrencyConflictError("idempotency_key", nil)
	}

	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("idempotency key %s holds %q: %w", key, value, err)
	}
	return id, false, nil
}

func (s *IdempotencyStore) Complete(ctx context.Context, key string, orderID kernel.UUID) error {
	return s.client.Set(ctx, fmt.Sprintf(keyFormat, key), orderID.String(), s.ttl).Err()
}

func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, fmt.Sprintf(keyFormat, key)).Err()
}
