//go:build integration

package redisad_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisad "alfakhama_rentals/internal/adapters/redis"
)

func TestCache_RealRedis(t *testing.T) {
	// Start isolated Redis; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run redis: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))
	c := redisad.New(addr, "", 0)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	if err := pool.Retry(func() error { return c.Ping(ctx) }); err != nil {
		t.Fatalf("connect redis: %v", err)
	}

	require.NoError(t, c.Set(ctx, "page:en:cars", "<p>Cars</p>", 30))
	var got string
	ok, err := c.Get(ctx, "page:en:cars", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<p>Cars</p>", got)
}
