// Package realtime pushes per-user events over Redis pub/sub.
// Delivery is fire-and-forget: a user with no open stream simply misses the push
// and reads the durable notification row later.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var ErrDisabled = errors.New("live push disabled")

// Event is the envelope published on a user's channel.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Publisher interface {
	Publish(ctx context.Context, userID int64, event string, payload any) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, userID int64) (*Subscription, error)
}

// Hub is both ends of the per-user channels.
type Hub interface {
	Publisher
	Subscriber
}

type redisHub struct {
	client *redis.Client
	prefix string
}

func NewRedisHub(client *redis.Client, prefix string) Hub {
	return &redisHub{client: client, prefix: prefix}
}

func (h *redisHub) channel(userID int64) string {
	return h.prefix + strconv.FormatInt(userID, 10)
}

func (h *redisHub) Publish(ctx context.Context, userID int64, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", event, err)
	}
	msg, err := json.Marshal(Event{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("encoding %s envelope: %w", event, err)
	}

	if err := h.client.Publish(ctx, h.channel(userID), msg).Err(); err != nil {
		return fmt.Errorf("publishing %s to user %d: %w", event, userID, err)
	}
	return nil
}

func (h *redisHub) Subscribe(ctx context.Context, userID int64) (*Subscription, error) {
	ps := h.client.Subscribe(ctx, h.channel(userID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribing to user %d: %w", userID, err)
	}

	sub := &Subscription{
		pubsub: ps,
		events: make(chan Event, 16),
	}
	go sub.pump(ctx)
	return sub, nil
}

// Subscription delivers decoded events until Close is called or the context ends.
type Subscription struct {
	pubsub *redis.PubSub
	events chan Event
}

func (s *Subscription) Events() <-chan Event {
	return s.events
}

func (s *Subscription) Close() error {
	return s.pubsub.Close()
}

func (s *Subscription) pump(ctx context.Context) {
	defer close(s.events)

	msgs := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				slog.WarnContext(ctx, "dropping undecodable live event",
					"channel", msg.Channel,
					"error", err,
				)
				continue
			}
			select {
			case s.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}
}

type noopHub struct{}

// NewNoopHub is used when Redis is not configured. Publishing succeeds silently.
func NewNoopHub() Hub {
	return noopHub{}
}

func (noopHub) Publish(context.Context, int64, string, any) error {
	return nil
}

func (noopHub) Subscribe(context.Context, int64) (*Subscription, error) {
	return nil, ErrDisabled
}
