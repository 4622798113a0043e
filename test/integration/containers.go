package integration

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type Env struct {
	Redis  *tcredis.RedisContainer
	URL    string
	Cancel context.CancelFunc
}

func Setup(ctx context.Context) (*Env, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)

	redisC, err := tcredis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	if err != nil {
		cancel()
		return nil, err
	}

	url, err := redisC.ConnectionString(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	return &Env{
		Redis:  redisC,
		URL:    url,
		Cancel: cancel,
	}, nil
}
