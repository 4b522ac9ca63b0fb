package testutil

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fekuna/omnipos-inventory-service/pkg/cache"
	"github.com/stretchr/testify/require"
)

// NewRedis starts an in-process Redis and returns a client connected to it.
func NewRedis(t *testing.T) (*cache.RedisClient, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := cache.NewRedisClient(&cache.Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}
