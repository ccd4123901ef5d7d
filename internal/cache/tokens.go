package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenKeeper persists a session's bearer token in redis, so a gateway
// restart does not log everyone out. Satisfies store.TokenKeeper.
type TokenKeeper struct {
	client *Client
	key    string
	ttl    time.Duration
}

func (c *Client) Tokens(sessionID string, ttl time.Duration) *TokenKeeper {
	return &TokenKeeper{
		client: c,
		key:    "session:token:" + sessionID,
		ttl:    ttl,
	}
}

func (k *TokenKeeper) Load() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := k.client.rdb.Get(ctx, k.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (k *TokenKeeper) Save(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return k.client.rdb.Set(ctx, k.key, token, k.ttl).Err()
}

func (k *TokenKeeper) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return k.client.rdb.Del(ctx, k.key).Err()
}
