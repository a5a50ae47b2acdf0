package redis

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/coastfire-calculator/internal/storage"
	"github.com/rpgo/coastfire-calculator/internal/storage/storagetest"
)

var _ storage.InputStore = (*Store)(nil)

func TestKeyUsesPrefix(t *testing.T) {
	s := NewWithClient(goredis.NewClient(&goredis.Options{Addr: "localhost:0"}), "test:")
	defer s.Close()
	assert.Equal(t, "test:"+storage.DefaultKey, s.Key(storage.DefaultKey))
}

// TestStore runs against a live server when REDIS_ADDR is set.
func TestStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	require.NoError(t, client.Ping(ctx).Err())

	prefix := "coastfire-test:" + t.Name() + ":"
	store := NewWithClient(client, prefix)
	t.Cleanup(func() { store.Close() })
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
	})

	storagetest.Run(t, store)
}

func TestNew_UnreachableServer(t *testing.T) {
	_, err := New(context.Background(), "127.0.0.1:1")
	assert.Error(t, err)
}
