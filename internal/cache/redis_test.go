package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
)

func stubRedis(t *testing.T, pingErr error) *string {
	t.Helper()

	origNewClient := newRedisClient
	origPing := pingRedis
	t.Cleanup(func() {
		newRedisClient = origNewClient
		pingRedis = origPing
	})

	var capturedAddr string
	newRedisClient = func(opts *redis.Options) *redis.Client {
		capturedAddr = opts.Addr
		return redis.NewClient(opts)
	}
	pingRedis = func(ctx context.Context, client *redis.Client) error {
		return pingErr
	}
	return &capturedAddr
}

func TestInitRedisWithCustomAddr(t *testing.T) {
	addr := stubRedis(t, nil)

	client := InitRedis(context.Background(), "redis:9999")
	if client == nil {
		t.Fatal("expected a client for a reachable server")
	}
	if *addr != "redis:9999" {
		t.Fatalf("expected custom addr, got %s", *addr)
	}
}

func TestInitRedisEmptyAddrIsOptional(t *testing.T) {
	if client := InitRedis(context.Background(), ""); client != nil {
		t.Fatal("empty addr should run without cache")
	}
}

func TestInitRedisUnreachableIsOptional(t *testing.T) {
	stubRedis(t, errors.New("connection refused"))

	if client := InitRedis(context.Background(), "redis:9999"); client != nil {
		t.Fatal("unreachable server should run without cache")
	}
}

func TestInitRedisBadURLIsOptional(t *testing.T) {
	stubRedis(t, nil)

	if client := InitRedis(context.Background(), "redis://[bad-url"); client != nil {
		t.Fatal("unparseable URL should run without cache")
	}
}
