package blob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kariyeryolu/backend/internal/platform/logger"
)

const redisOpTimeout = 5 * time.Second

// RedisStore keeps the blob under a single redis key.
type RedisStore struct {
	rdb *redis.Client
	key string
	log *logger.Logger
}

func NewRedisStore(addr, password string, db int, key string, baseLog *logger.Logger) (*RedisStore, error) {
	if key == "" {
		return nil, fmt.Errorf("redis store: empty key")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis store: ping %s: %w", addr, err)
	}

	return &RedisStore{
		rdb: rdb,
		key: key,
		log: baseLog.With("store", "RedisStore"),
	}, nil
}

func (s *RedisStore) Load() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Save(data []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}

func (s *RedisStore) Delete() error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	return s.rdb.Del(ctx, s.key).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
