package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDisabledCacheIsPermanentlyUnavailable(t *testing.T) {
	c := NewDisabledCache()
	ctx := context.Background()

	assert.False(t, c.Available())

	value, outcome := c.Get(ctx, ProductsKey)
	assert.Nil(t, value)
	assert.Equal(t, Unavailable, outcome)

	// no-ops, must not panic on a nil client
	c.Set(ctx, ProductsKey, []byte("{}"), time.Minute)
	c.Delete(ctx, ProductsKey)
	assert.False(t, c.Reconnect(ctx))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "hit", Hit.String())
	assert.Equal(t, "miss", Miss.String())
	assert.Equal(t, "unavailable", Unavailable.String())
}
