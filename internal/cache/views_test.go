package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/daniilsolovey/blog-cms/internal/blog"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ blog.ViewCache = (*ViewCache)(nil)

// testClient connects to DB 15 of the local Redis and skips the test when it is unreachable.
func testClient(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client, err := Connect(context.Background(), addr, os.Getenv("REDIS_PASSWORD"), 15)
	if err != nil {
		t.Skipf("skipping integration test: redis not reachable: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		keys, _ := client.Keys(ctx, viewKeyPrefix+"test:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func TestViewCacheSeen(t *testing.T) {
	ctx := context.Background()
	c := NewViewCache(testClient(t))

	seen, err := c.Seen(ctx, "test:post:1:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.False(t, seen)

	seen, err = c.Seen(ctx, "test:post:1:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = c.Seen(ctx, "test:post:1:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestViewCacheWindowExpires(t *testing.T) {
	ctx := context.Background()
	c := NewViewCache(testClient(t))

	_, err := c.Seen(ctx, "test:page:/about:10.0.0.1", 100*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(250 * time.Millisecond)

	seen, err := c.Seen(ctx, "test:page:/about:10.0.0.1", 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestViewCacheForget(t *testing.T) {
	ctx := context.Background()
	c := NewViewCache(testClient(t))

	_, err := c.Seen(ctx, "test:post:2:10.0.0.1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, c.Forget(ctx, "test:post:2:10.0.0.1"))

	seen, err := c.Seen(ctx, "test:post:2:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}
