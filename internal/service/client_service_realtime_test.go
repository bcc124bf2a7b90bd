package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStream is one open change stream handed out by fakeSubscriber.
type fakeStream struct {
	events chan models.ChangeEvent
	once   sync.Once
	ctx    context.Context
}

func (s *fakeStream) close() {
	s.once.Do(func() { close(s.events) })
}

type fakeSubscriber struct {
	mu      sync.Mutex
	streams []*fakeStream
	fail    int
}

func (f *fakeSubscriber) SubscribeChanges(ctx context.Context, _ ...models.Table) (<-chan models.ChangeEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail > 0 {
		f.fail--
		return nil, errors.New("connection refused")
	}

	s := &fakeStream{events: make(chan models.ChangeEvent), ctx: ctx}
	f.streams = append(f.streams, s)
	go func() {
		<-ctx.Done()
		s.close()
	}()
	return s.events, nil
}

func (f *fakeSubscriber) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.streams)
}

func (f *fakeSubscriber) stream(i int) *fakeStream {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.streams[i]
}

func newTestBridge(sub ChangeSubscriber, debounce time.Duration) *realtimeBridge {
	b := NewRealtimeBridge(sub, debounce, logger.Nop()).(*realtimeBridge)
	b.reconnectDelay = 5 * time.Millisecond
	return b
}

func countingRefresh(n *atomic.Int32, views chan<- models.PolicyFilter) RefreshFunc {
	return func(_ context.Context, view models.PolicyFilter) {
		n.Add(1)
		if views != nil {
			views <- view
		}
	}
}

func TestRealtimeBridge_BurstCoalesces(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 50*time.Millisecond)
	defer b.Close()

	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, models.PolicyFilter{Scope: models.ScopeOwned}, countingRefresh(&refreshes, nil))
	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)

	events := sub.stream(0).events
	for range 5 {
		events <- models.ChangeEvent{Table: models.TablePolicies, Op: models.OpUpdate}
	}

	require.Eventually(t, func() bool { return refreshes.Load() >= 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(120 * time.Millisecond)
	assert.LessOrEqual(t, refreshes.Load(), int32(2))
}

func TestRealtimeBridge_RefreshUsesBoundView(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 0)
	defer b.Close()

	view := models.PolicyFilter{Status: models.StatusDraft, Scope: models.ScopeAll}
	views := make(chan models.PolicyFilter, 4)
	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, view, countingRefresh(&refreshes, views))
	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)

	sub.stream(0).events <- models.ChangeEvent{Table: models.TableNotifications, Op: models.OpInsert}

	select {
	case got := <-views:
		assert.Equal(t, view, got)
	case <-time.After(time.Second):
		t.Fatal("refresh not called")
	}
}

func TestRealtimeBridge_SameBindingIsNoop(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 0)
	defer b.Close()

	var refreshes atomic.Int32
	view := models.PolicyFilter{Scope: models.ScopeOwned}
	b.Bind(context.Background(), asha, view, countingRefresh(&refreshes, nil))
	b.Bind(context.Background(), asha, view, countingRefresh(&refreshes, nil))

	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sub.count())
}

func TestRealtimeBridge_RebindReplacesSubscription(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 0)
	defer b.Close()

	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, models.PolicyFilter{Scope: models.ScopeOwned}, countingRefresh(&refreshes, nil))
	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)

	b.Bind(context.Background(), ravi, models.PolicyFilter{Scope: models.ScopeShared}, countingRefresh(&refreshes, nil))
	require.Eventually(t, func() bool { return sub.count() == 2 }, time.Second, time.Millisecond)

	assert.Error(t, sub.stream(0).ctx.Err(), "old subscription must be cancelled")
	assert.NoError(t, sub.stream(1).ctx.Err())
}

func TestRealtimeBridge_ReconnectTriggersRefetch(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 0)
	defer b.Close()

	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, models.PolicyFilter{}, countingRefresh(&refreshes, nil))
	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)

	sub.stream(0).close()

	require.Eventually(t, func() bool { return sub.count() == 2 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return refreshes.Load() == 1 }, time.Second, time.Millisecond)
}

func TestRealtimeBridge_RetriesFailedSubscribe(t *testing.T) {
	sub := &fakeSubscriber{fail: 2}
	b := newTestBridge(sub, 0)
	defer b.Close()

	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, models.PolicyFilter{}, countingRefresh(&refreshes, nil))

	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)
}

func TestRealtimeBridge_CloseStopsEverything(t *testing.T) {
	sub := &fakeSubscriber{}
	b := newTestBridge(sub, 0)

	var refreshes atomic.Int32
	b.Bind(context.Background(), asha, models.PolicyFilter{}, countingRefresh(&refreshes, nil))
	require.Eventually(t, func() bool { return sub.count() == 1 }, time.Second, time.Millisecond)

	b.Close()
	b.Close()

	assert.Error(t, sub.stream(0).ctx.Err())
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, sub.count())
	assert.Zero(t, refreshes.Load())
}
