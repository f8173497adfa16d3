package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"estimator_backend/platform/logger"
)

// Invalidatable is a named cache that can mark keys stale.
type Invalidatable interface {
	Name() string
	Invalidate(keys ...string)
	InvalidateAll()
}

// InvalidationMessage is published on the invalidation channel. An empty
// Cache targets every cache; empty Keys targets every key.
type InvalidationMessage struct {
	Cache string   `json:"cache,omitempty"`
	Keys  []string `json:"keys,omitempty"`
}

// RedisInvalidator fans invalidations out to every API replica over Redis pub/sub.
type RedisInvalidator struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// NewRedisInvalidator creates an invalidator on channel.
func NewRedisInvalidator(client *redis.Client, channel string, log *logger.Logger) *RedisInvalidator {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisInvalidator{client: client, channel: channel, log: log}
}

// Publish broadcasts an invalidation.
func (r *RedisInvalidator) Publish(ctx context.Context, msg InvalidationMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish catalog invalidation: %w", err)
	}
	return nil
}

// Subscription delivers invalidations to local caches.
type Subscription struct {
	pubsub *redis.PubSub
	log    *logger.Logger
}

// Subscribe joins the invalidation channel and waits for Redis to confirm.
func (r *RedisInvalidator) Subscribe(ctx context.Context) (*Subscription, error) {
	pubsub := r.client.Subscribe(ctx, r.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe catalog invalidation: %w", err)
	}
	return &Subscription{pubsub: pubsub, log: r.log}, nil
}

// Run applies incoming messages to targets until ctx is done.
func (s *Subscription) Run(ctx context.Context, targets ...Invalidatable) {
	defer s.pubsub.Close()

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var inv InvalidationMessage
			if err := json.Unmarshal([]byte(msg.Payload), &inv); err != nil {
				s.log.Warn("invalid catalog invalidation message", "error", err)
				continue
			}
			Apply(inv, targets...)
			s.log.CatalogInvalidated(inv.Cache, len(inv.Keys))
		}
	}
}

// Apply routes an invalidation message to the matching targets.
func Apply(msg InvalidationMessage, targets ...Invalidatable) {
	for _, target := range targets {
		if msg.Cache != "" && msg.Cache != target.Name() {
			continue
		}
		if len(msg.Keys) == 0 {
			target.InvalidateAll()
			continue
		}
		target.Invalidate(msg.Keys...)
	}
}
