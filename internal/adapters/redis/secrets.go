package redisad

import (
	"context"

	"github.com/redis/go-redis/v9"

	"orion_concierge/internal/adapters/observability"
)

const keyPrefix = "secret:"

// Secrets stores the credential bag in redis so a fleet of API processes
// shares one bag. An unset name reads as "".
type Secrets struct{ c *redis.Client }

func New(addr, pass string, db int) *Secrets {
	return &Secrets{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (s *Secrets) Get(ctx context.Context, name string) (string, error) {
	v, err := s.c.Get(ctx, keyPrefix+name).Result()
	if err == redis.Nil {
		observability.ObserveSecrets("redis", "miss")
		return "", nil
	}
	if err != nil {
		return "", err
	}
	observability.ObserveSecrets("redis", "hit")
	return v, nil
}

func (s *Secrets) Set(ctx context.Context, name, value string) error {
	observability.ObserveSecrets("redis", "set")
	// No TTL: secrets are set once at configuration time and never expire.
	return s.c.Set(ctx, keyPrefix+name, value, 0).Err()
}
