package store

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalNotifier(t *testing.T) {
	n := NewLocalNotifier()
	ctx, cancel := context.WithCancel(context.Background())

	a, err := n.Subscribe(ctx)
	require.NoError(t, err)
	b, err := n.Subscribe(ctx)
	require.NoError(t, err)

	change := Change{Op: OpUpdate, ProductID: "p-1", At: time.Now()}
	require.NoError(t, n.Publish(ctx, change))

	assert.Equal(t, change, <-a)
	assert.Equal(t, change, <-b)

	cancel()
	assert.Eventually(t, func() bool {
		_, open := <-a
		return !open
	}, time.Second, 5*time.Millisecond)
}

func TestLocalNotifier_SlowSubscriberDoesNotBlock(t *testing.T) {
	n := NewLocalNotifier()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := n.Subscribe(ctx)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, n.Publish(ctx, Change{Op: OpCreate}))
	}
	assert.Len(t, ch, 1)
}

func TestRedisNotifier_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	n := NewRedisNotifier(client, "warehouse:catalog", zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.ErrorContains(t, n.Publish(ctx, Change{Op: OpDelete}), "failed to publish change")

	_, err := n.Subscribe(ctx)
	assert.ErrorContains(t, err, "failed to subscribe to warehouse:catalog")
}
