package service

import (
	"sync"

	"github.com/MKhiriev/go-policy-desk/models"
)

// Coordinator connects the dashboard's parts without package-level state.
// Handlers run synchronously on the publisher's goroutine, in subscription
// order.
type Coordinator struct {
	mu      sync.RWMutex
	nextID  uint64
	profile []subscription[models.Profile]
	open    []subscription[models.OpenPolicyRequest]
	refresh []subscription[struct{}]
}

type subscription[T any] struct {
	id uint64
	fn func(T)
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// OnProfileUpdated registers fn for profile changes. Call the returned func
// to unsubscribe.
func (c *Coordinator) OnProfileUpdated(fn func(models.Profile)) func() {
	return addSubscription(c, &c.profile, fn)
}

func (c *Coordinator) PublishProfileUpdated(profile models.Profile) {
	notifySubscribers(c, &c.profile, profile)
}

// OnOpenPolicy registers fn for requests to open a policy in the wizard.
func (c *Coordinator) OnOpenPolicy(fn func(models.OpenPolicyRequest)) func() {
	return addSubscription(c, &c.open, fn)
}

func (c *Coordinator) PublishOpenPolicy(req models.OpenPolicyRequest) {
	notifySubscribers(c, &c.open, req)
}

// OnDashboardRefresh registers fn for dashboard refetch requests.
func (c *Coordinator) OnDashboardRefresh(fn func()) func() {
	return addSubscription(c, &c.refresh, func(struct{}) { fn() })
}

func (c *Coordinator) PublishDashboardRefresh() {
	notifySubscribers(c, &c.refresh, struct{}{})
}

func addSubscription[T any](c *Coordinator, subs *[]subscription[T], fn func(T)) func() {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	*subs = append(*subs, subscription[T]{id: id, fn: fn})
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			for i, s := range *subs {
				if s.id == id {
					*subs = append((*subs)[:i:i], (*subs)[i+1:]...)
					return
				}
			}
		})
	}
}

func notifySubscribers[T any](c *Coordinator, subs *[]subscription[T], value T) {
	c.mu.RLock()
	handlers := make([]func(T), 0, len(*subs))
	for _, s := range *subs {
		handlers = append(handlers, s.fn)
	}
	c.mu.RUnlock()

	for _, fn := range handlers {
		fn(value)
	}
}
