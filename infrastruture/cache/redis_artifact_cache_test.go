package cache

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisArtifactCache(t *testing.T) {
	t.Run("nil client", func(t *testing.T) {
		_, err := NewRedisArtifactCache(nil, 60)
		assert.Error(t, err)
	})

	t.Run("ttl from seconds", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
		defer client.Close()

		c, err := NewRedisArtifactCache(client, 90)
		require.NoError(t, err)
		assert.Equal(t, float64(90), c.(*RedisArtifactCache).ttl.Seconds())
	})
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "maze:abc:svg:render_lock", lockKey("maze:abc:svg"))
}
