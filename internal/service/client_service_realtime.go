package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

const defaultReconnectDelay = 2 * time.Second

// ChangeSubscriber opens the server's change stream. It is satisfied by the
// server adapter.
type ChangeSubscriber interface {
	SubscribeChanges(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error)
}

var dashboardTables = []models.Table{models.TablePolicies, models.TablePolicyShares, models.TableNotifications}

type realtimeBridge struct {
	subscriber     ChangeSubscriber
	debounce       time.Duration
	reconnectDelay time.Duration

	// bindMu serialises Bind and Close.
	bindMu sync.Mutex

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	identity models.Identity
	view     models.PolicyFilter

	logger *logger.Logger
}

// NewRealtimeBridge creates a bridge that waits debounce after an event
// before refetching. It is idle until Bind is called.
func NewRealtimeBridge(subscriber ChangeSubscriber, debounce time.Duration, logger *logger.Logger) RealtimeBridge {
	return &realtimeBridge{
		subscriber:     subscriber,
		debounce:       debounce,
		reconnectDelay: defaultReconnectDelay,
		logger:         logger,
	}
}

// Bind implements RealtimeBridge. Every change event schedules a full
// refetch; events arriving while a refetch runs collapse into one more.
// A dropped stream is reopened and followed by a refetch, since events may
// have been missed meanwhile.
func (b *realtimeBridge) Bind(ctx context.Context, identity models.Identity, view models.PolicyFilter, refresh RefreshFunc) {
	b.bindMu.Lock()
	defer b.bindMu.Unlock()

	b.mu.Lock()
	same := b.cancel != nil && b.identity == identity && b.view == view
	b.mu.Unlock()
	if same {
		return
	}

	b.stop()

	b.mu.Lock()
	bindCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel
	b.identity = identity
	b.view = view
	b.wg.Add(2)
	b.mu.Unlock()

	pending := make(chan struct{}, 1)
	go b.listen(bindCtx, pending)
	go b.refetch(bindCtx, view, refresh, pending)

	b.logger.Debug().Str("user_id", identity.UserID).Any("view", view).Msg("realtime bridge bound")
}

// Close implements RealtimeBridge. It is safe to call when not bound.
func (b *realtimeBridge) Close() {
	b.bindMu.Lock()
	defer b.bindMu.Unlock()
	b.stop()
}

func (b *realtimeBridge) stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.identity = models.Identity{}
	b.view = models.PolicyFilter{}
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	b.wg.Wait()
}

func (b *realtimeBridge) listen(ctx context.Context, pending chan<- struct{}) {
	defer b.wg.Done()

	reconnect := false
	for {
		events, err := b.subscriber.SubscribeChanges(ctx, dashboardTables...)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.logger.Warn().Err(err).Str("func", "realtimeBridge.listen").Msg("error subscribing to changes")
			if !sleep(ctx, b.reconnectDelay) {
				return
			}
			continue
		}

		if reconnect {
			signal(pending)
		}
		reconnect = true

		for range events {
			signal(pending)
		}

		if ctx.Err() != nil {
			return
		}
		b.logger.Debug().Err(adapter.ErrStreamClosed).Msg("reconnecting change stream")
		if !sleep(ctx, b.reconnectDelay) {
			return
		}
	}
}

func (b *realtimeBridge) refetch(ctx context.Context, view models.PolicyFilter, refresh RefreshFunc, pending <-chan struct{}) {
	defer b.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
		}

		if b.debounce > 0 && !sleep(ctx, b.debounce) {
			return
		}
		refresh(ctx, view)
	}
}

// signal schedules a refetch unless one is already pending.
func signal(pending chan<- struct{}) {
	select {
	case pending <- struct{}{}:
	default:
	}
}

// sleep waits d and reports false when ctx ended first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
