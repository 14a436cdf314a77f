package potfile

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash that holds token → secret entries.
const DefaultRedisKey = "jwtcrack:potfile"

type RedisConfig struct {
	ConnectionURL  string        `env:"JWTCRACK_REDIS_URL"`                            // ConnectionURL in the format "redis://:password@localhost:6379/0". Empty disables the Redis store.
	Key            string        `env:"JWTCRACK_REDIS_KEY" envDefault:"jwtcrack:potfile"` // Key is the hash that stores entries.
	RetryAttempts  int           `env:"JWTCRACK_REDIS_RETRY_ATTEMPTS" envDefault:"3"`     // RetryAttempts is the number of attempts to connect.
	RetryInterval  time.Duration `env:"JWTCRACK_REDIS_RETRY_INTERVAL" envDefault:"2s"`    // RetryInterval is the delay between attempts.
	ConnectTimeout time.Duration `env:"JWTCRACK_REDIS_CONNECT_TIMEOUT" envDefault:"10s"`  // ConnectTimeout bounds the whole connect procedure.
}

// HashClient is the subset of the go-redis API used by RedisStore.
type HashClient interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// RedisStore keeps entries in a Redis hash so several machines can share
// recovered secrets.
type RedisStore struct {
	client HashClient
	key    string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithKey overrides the hash name.
func WithKey(key string) RedisOption {
	return func(s *RedisStore) {
		if key != "" {
			s.key = key
		}
	}
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client HashClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, key: DefaultRedisKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Lookup(ctx context.Context, token string) (string, bool, error) {
	secret, err := s.client.HGet(ctx, s.key, token).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Join(ErrFailedToRead, err)
	}
	return secret, true, nil
}

func (s *RedisStore) Record(ctx context.Context, token, secret string) error {
	if !validEntry(token, secret) {
		return ErrInvalidEntry
	}
	if err := s.client.HSet(ctx, s.key, token, secret).Err(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}

// Connect establishes a connection to a Redis server, retrying up to
// cfg.RetryAttempts times with cfg.RetryInterval between attempts.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	for range max(cfg.RetryAttempts, 1) {
		client := redis.NewClient(opt)

		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}

		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}
