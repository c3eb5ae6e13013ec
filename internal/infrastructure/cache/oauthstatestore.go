// Package cache holds Redis-backed transient state and read-through caches.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/recovvo-inc/recovvo/internal/application/user/usecases"
)

const oauthStatePrefix = "oauth:state:"

// ErrStateNotFound is returned when a state token is unknown or already used.
var ErrStateNotFound = errors.New("oauth state not found")

// RedisOAuthStateStore holds OAuth flow state keyed by the opaque state
// token. Consume uses GETDEL, so a state token authorizes exactly one
// callback even under concurrent delivery.
type RedisOAuthStateStore struct {
	client *redis.Client
}

func NewRedisOAuthStateStore(client *redis.Client) *RedisOAuthStateStore {
	return &RedisOAuthStateStore{client: client}
}

func (s *RedisOAuthStateStore) Save(ctx context.Context, state string, data usecases.OAuthState, ttl time.Duration) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal oauth state: %w", err)
	}

	if err := s.client.Set(ctx, oauthStatePrefix+state, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store oauth state in redis: %w", err)
	}
	return nil
}

func (s *RedisOAuthStateStore) Consume(ctx context.Context, state string) (*usecases.OAuthState, error) {
	payload, err := s.client.GetDel(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to consume oauth state from redis: %w", err)
	}

	var data usecases.OAuthState
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal oauth state: %w", err)
	}
	return &data, nil
}
