package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Op is the kind of write a Change announces.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Change announces a write to the products table.
type Change struct {
	Op        Op        `json:"op"`
	ProductID string    `json:"product_id"`
	At        time.Time `json:"at"`
}

// Notifier carries change announcements between store instances.
type Notifier interface {
	Publish(ctx context.Context, change Change) error
	// Subscribe delivers changes until ctx is done, then closes the channel.
	Subscribe(ctx context.Context) (<-chan Change, error)
}

// LocalNotifier fans changes out inside one process.
type LocalNotifier struct {
	mu   sync.Mutex
	subs map[chan Change]struct{}
}

// NewLocalNotifier creates an in-process notifier.
func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{subs: make(map[chan Change]struct{})}
}

// Publish delivers change to every subscriber. A subscriber that has not
// drained its previous notice misses this one; every notice triggers a full
// reload, so nothing is lost.
func (n *LocalNotifier) Publish(ctx context.Context, change Change) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs {
		select {
		case ch <- change:
		default:
		}
	}
	return nil
}

// Subscribe registers a subscriber until ctx is done.
func (n *LocalNotifier) Subscribe(ctx context.Context) (<-chan Change, error) {
	ch := make(chan Change, 1)
	n.mu.Lock()
	n.subs[ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs, ch)
		close(ch)
		n.mu.Unlock()
	}()
	return ch, nil
}

// RedisNotifier carries changes over a Redis pub/sub channel, so every
// service instance reloads when any of them writes.
type RedisNotifier struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// NewRedisNotifier creates a notifier on an existing client. The caller keeps
// ownership of the client.
func NewRedisNotifier(client *redis.Client, channel string, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{client: client, channel: channel, logger: logger}
}

// Publish sends change on the channel.
func (n *RedisNotifier) Publish(ctx context.Context, change Change) error {
	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish change: %w", err)
	}
	return nil
}

// Subscribe listens on the channel until ctx is done.
func (n *RedisNotifier) Subscribe(ctx context.Context) (<-chan Change, error) {
	pubsub := n.client.Subscribe(ctx, n.channel)

	// Wait for the subscription to be confirmed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", n.channel, err)
	}
	n.logger.Info("Subscribed to catalog changes", zap.String("channel", n.channel))

	out := make(chan Change, 1)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					n.logger.Warn("Catalog change channel closed")
					return
				}
				var change Change
				if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
					n.logger.Error("Failed to decode catalog change",
						zap.String("payload", msg.Payload),
						zap.Error(err))
					continue
				}
				select {
				case out <- change:
				default:
				}
			}
		}
	}()
	return out, nil
}
