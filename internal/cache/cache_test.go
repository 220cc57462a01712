package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClient_FailsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "user:1")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "user:1", []byte("x"), time.Minute))
	assert.NoError(t, c.Delete(ctx, "user:1"))
	assert.NoError(t, c.Close())

	var out map[string]string
	assert.False(t, c.GetJSON(ctx, "user:1", &out))
	assert.NoError(t, c.SetJSON(ctx, "user:1", map[string]string{"a": "b"}, time.Minute))
}

func TestUnreachableRedis_ReadsAsMiss(t *testing.T) {
	// Port 1 is never a redis server; every call must degrade to a miss.
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
}

func TestSetJSON_RejectsUnencodable(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	err := c.SetJSON(context.Background(), "k", make(chan int), time.Minute)
	assert.Error(t, err)
}
