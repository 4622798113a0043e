package blob

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/tableside/tableside/internal/billing/domain"
)

// RedisStore keeps the serialized bill array under one Redis key, for
// deployments where the terminal's filesystem is not durable.
type RedisStore struct {
	log *slog.Logger
	rdb *redis.Client
	key string
}

func NewRedisStore(log *slog.Logger, rdb *redis.Client, key string) *RedisStore {
	return &RedisStore{log: log, rdb: rdb, key: key}
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.ActiveBill, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	var bills []domain.ActiveBill
	if err := json.Unmarshal(data, &bills); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return bills, nil
}

func (s *RedisStore) Save(ctx context.Context, bills []domain.ActiveBill) error {
	if bills == nil {
		bills = []domain.ActiveBill{}
	}
	data, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, data, 0).Err()
}
