package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/redis/go-redis/v9"
)

const changeChannelPrefix = "policy-desk:changes:"

// redisFeed publishes change events over Redis pub/sub so that every server
// instance sees writes made by any other.
type redisFeed struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisFeed connects to Redis and verifies the connection.
func NewRedisFeed(ctx context.Context, cfg config.Redis, logger *logger.Logger) (ChangeFeed, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Err(err).Str("func", "NewRedisFeed").Str("addr", cfg.Addr).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info().Str("func", "NewRedisFeed").Msg("connected to redis successfully")

	return NewRedisFeedWithClient(client, logger), nil
}

// NewRedisFeedWithClient wraps an existing client.
func NewRedisFeedWithClient(client *redis.Client, logger *logger.Logger) ChangeFeed {
	return &redisFeed{client: client, logger: logger}
}

func changeChannel(table models.Table) string {
	return changeChannelPrefix + string(table)
}

func (f *redisFeed) Publish(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPublishingChange, err)
	}

	if err = f.client.Publish(ctx, changeChannel(event.Table), payload).Err(); err != nil {
		if err == redis.ErrClosed {
			return ErrFeedClosed
		}
		return fmt.Errorf("%w: %w", ErrPublishingChange, err)
	}

	return nil
}

// Subscribe waits for the subscription to be confirmed before returning, so
// events published after Subscribe returns are never missed.
func (f *redisFeed) Subscribe(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error) {
	set := tableSet(tables)
	channels := make([]string, 0, len(set))
	for table := range set {
		channels = append(channels, changeChannel(table))
	}

	pubsub := f.client.Subscribe(ctx, channels...)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("%w: %w", ErrSubscribing, err)
	}

	out := make(chan models.ChangeEvent, defaultSubscriberCapacity)
	go f.forward(ctx, pubsub, out)

	return out, nil
}

func (f *redisFeed) forward(ctx context.Context, pubsub *redis.PubSub, out chan<- models.ChangeEvent) {
	defer close(out)
	defer pubsub.Close()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}

			var event models.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				f.logger.Warn().Err(err).Str("channel", msg.Channel).Msg("malformed change event skipped")
				continue
			}
			if event.Table == "" {
				event.Table = models.Table(strings.TrimPrefix(msg.Channel, changeChannelPrefix))
			}

			select {
			case out <- event:
			default:
				f.logger.Debug().Str("table", string(event.Table)).Msg("subscriber buffer full, event dropped")
			}
		}
	}
}

func (f *redisFeed) Close() error {
	return f.client.Close()
}
