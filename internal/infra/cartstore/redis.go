package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tourbook/internal/domain/cart"
	"tourbook/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// RedisStore keeps each cart as one JSON array under cart:<key>. Every
// save rewrites the whole value and refreshes the TTL, so an abandoned
// cart expires on its own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]cart.Booking, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var items []cart.Booking
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Wrap(err, "failed to decode cart")
	}
	return items, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, items []cart.Booking) error {
	if len(items) == 0 {
		return s.Clear(ctx, key)
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}
