package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, events <-chan models.ChangeEvent) models.ChangeEvent {
	t.Helper()
	select {
	case event, ok := <-events:
		require.True(t, ok, "channel closed")
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}
	return models.ChangeEvent{}
}

func assertNoEvent(t *testing.T, events <-chan models.ChangeEvent) {
	t.Helper()
	select {
	case event := <-events:
		t.Fatalf("unexpected event %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

// ── memory feed ─────────────────────────────────────────────────────────────

func TestMemoryFeed_DeliversSubscribedTablesOnly(t *testing.T) {
	feed := NewMemoryFeed(logger.Nop())
	t.Cleanup(func() { feed.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := feed.Subscribe(ctx, models.TablePolicies, models.TablePolicyShares)
	require.NoError(t, err)

	require.NoError(t, feed.Publish(ctx, models.ChangeEvent{Table: models.TableNotifications, Op: models.OpInsert}))
	require.NoError(t, feed.Publish(ctx, models.ChangeEvent{Table: models.TablePolicies, Op: models.OpUpdate, RecordID: "p-1"}))

	event := receive(t, events)
	assert.Equal(t, models.TablePolicies, event.Table)
	assert.Equal(t, "p-1", event.RecordID)
	assertNoEvent(t, events)
}

func TestMemoryFeed_NoTablesMeansAll(t *testing.T) {
	feed := NewMemoryFeed(logger.Nop())
	t.Cleanup(func() { feed.Close() })

	events, err := feed.Subscribe(context.Background())
	require.NoError(t, err)

	require.NoError(t, feed.Publish(context.Background(), models.ChangeEvent{Table: models.TableNotifications}))
	assert.Equal(t, models.TableNotifications, receive(t, events).Table)
}

func TestMemoryFeed_CancelClosesChannel(t *testing.T) {
	feed := NewMemoryFeed(logger.Nop())
	t.Cleanup(func() { feed.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	events, err := feed.Subscribe(ctx, models.TablePolicies)
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryFeed_Closed(t *testing.T) {
	feed := NewMemoryFeed(logger.Nop())
	events, err := feed.Subscribe(context.Background(), models.TablePolicies)
	require.NoError(t, err)

	require.NoError(t, feed.Close())
	require.NoError(t, feed.Close())

	_, ok := <-events
	assert.False(t, ok)

	assert.ErrorIs(t, feed.Publish(context.Background(), models.ChangeEvent{Table: models.TablePolicies}), ErrFeedClosed)
	_, err = feed.Subscribe(context.Background())
	assert.ErrorIs(t, err, ErrFeedClosed)
}

func TestMemoryFeed_FullBufferDoesNotBlock(t *testing.T) {
	feed := NewMemoryFeed(logger.Nop())
	t.Cleanup(func() { feed.Close() })

	_, err := feed.Subscribe(context.Background(), models.TablePolicies)
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		for range defaultSubscriberCapacity * 2 {
			_ = feed.Publish(context.Background(), models.ChangeEvent{Table: models.TablePolicies})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

// ── redis feed ──────────────────────────────────────────────────────────────

func newTestRedisFeed(t *testing.T) ChangeFeed {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	feed := NewRedisFeedWithClient(client, logger.Nop())
	t.Cleanup(func() { feed.Close() })
	return feed
}

func TestRedisFeed_PublishSubscribe(t *testing.T) {
	feed := newTestRedisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := feed.Subscribe(ctx, models.TablePolicyShares)
	require.NoError(t, err)

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, feed.Publish(ctx, models.ChangeEvent{Table: models.TablePolicies, Op: models.OpInsert, At: at}))
	require.NoError(t, feed.Publish(ctx, models.ChangeEvent{Table: models.TablePolicyShares, Op: models.OpInsert, RecordID: "p-1", At: at}))

	event := receive(t, events)
	assert.Equal(t, models.TablePolicyShares, event.Table)
	assert.Equal(t, models.OpInsert, event.Op)
	assert.Equal(t, "p-1", event.RecordID)
	assert.True(t, at.Equal(event.At))
	assertNoEvent(t, events)
}

func TestRedisFeed_CancelClosesChannel(t *testing.T) {
	feed := newTestRedisFeed(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := feed.Subscribe(ctx, models.TablePolicies)
	require.NoError(t, err)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewRedisFeed_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	addr := s.Addr()
	s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := NewRedisFeed(ctx, config.Redis{Addr: addr}, logger.Nop())
	assert.Error(t, err)
}
