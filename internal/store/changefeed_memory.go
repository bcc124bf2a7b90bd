package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

const defaultSubscriberCapacity = 64

// memoryFeed is the in-process [ChangeFeed] used when no Redis address is
// configured. It only reaches subscribers of the same server process.
type memoryFeed struct {
	mu          sync.RWMutex
	subscribers map[*feedSubscriber]struct{}
	closed      bool
	capacity    int
	logger      *logger.Logger
}

type feedSubscriber struct {
	tables map[models.Table]struct{}
	events chan models.ChangeEvent
}

// NewMemoryFeed constructs an in-process change feed.
func NewMemoryFeed(logger *logger.Logger) ChangeFeed {
	logger.Debug().Msg("creating in-memory change feed")
	return &memoryFeed{
		subscribers: make(map[*feedSubscriber]struct{}),
		capacity:    defaultSubscriberCapacity,
		logger:      logger,
	}
}

// Publish delivers the event to every subscriber of its table. A subscriber
// whose buffer is full misses the event; it already has a refetch pending.
func (f *memoryFeed) Publish(ctx context.Context, event models.ChangeEvent) error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return ErrFeedClosed
	}

	for sub := range f.subscribers {
		if _, ok := sub.tables[event.Table]; !ok {
			continue
		}
		select {
		case sub.events <- event:
		default:
			f.logger.Debug().Str("table", string(event.Table)).Msg("subscriber buffer full, event dropped")
		}
	}

	return nil
}

func (f *memoryFeed) Subscribe(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error) {
	sub := &feedSubscriber{
		tables: tableSet(tables),
		events: make(chan models.ChangeEvent, f.capacity),
	}

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrFeedClosed
	}
	f.subscribers[sub] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.remove(sub)
	}()

	return sub.events, nil
}

func (f *memoryFeed) remove(sub *feedSubscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subscribers[sub]; !ok {
		return
	}
	delete(f.subscribers, sub)
	close(sub.events)
}

// Close ends every subscription.
func (f *memoryFeed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	for sub := range f.subscribers {
		delete(f.subscribers, sub)
		close(sub.events)
	}

	return nil
}

// tableSet returns the requested tables, or every published table when none
// is named.
func tableSet(tables []models.Table) map[models.Table]struct{} {
	if len(tables) == 0 {
		tables = []models.Table{models.TablePolicies, models.TablePolicyShares, models.TableNotifications}
	}

	set := make(map[models.Table]struct{}, len(tables))
	for _, t := range tables {
		set[t] = struct{}{}
	}
	return set
}
