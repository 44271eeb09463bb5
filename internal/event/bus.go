package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sort"
	"sync"
	"sync/atomic"
)

// Stats is a snapshot of bus counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerErrors uint64
	HandlerPanics uint64
	Subscriptions int
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used for handler failures.
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// SubscriptionOption configures a subscription.
type SubscriptionOption func(*Subscription)

// WithPriority sets the subscription's priority.
func WithPriority(p Priority) SubscriptionOption {
	return func(s *Subscription) {
		s.priority = p
	}
}

// Once cancels the subscription after its first successful delivery.
func Once() SubscriptionOption {
	return func(s *Subscription) {
		s.once = true
	}
}

// Subscription is a registered handler.
type Subscription struct {
	id       uint64
	pattern  Topic
	handler  HandlerFunc
	priority Priority
	once     bool
	active   atomic.Bool
	bus      *Bus
}

// ID returns the subscription's identifier.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Pattern returns the topic pattern.
func (s *Subscription) Pattern() Topic {
	return s.pattern
}

// IsActive returns true until the subscription is cancelled.
func (s *Subscription) IsActive() bool {
	return s.active.Load()
}

// Cancel removes the subscription from its bus. It is safe to call more
// than once.
func (s *Subscription) Cancel() {
	if s.active.Swap(false) {
		s.bus.remove(s.id)
	}
}

// Bus is a synchronous topic bus.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64
	logger *slog.Logger

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(slog.String("component", "event"))
	return b
}

// Subscribe registers fn for topics matching pattern.
func (b *Bus) Subscribe(pattern Topic, fn HandlerFunc, opts ...SubscriptionOption) (*Subscription, error) {
	if !pattern.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTopic, pattern)
	}
	if fn == nil {
		return nil, ErrNilHandler
	}

	sub := &Subscription{
		pattern:  pattern,
		handler:  fn,
		priority: PriorityNormal,
		bus:      b,
	}
	for _, opt := range opts {
		opt(sub)
	}
	sub.active.Store(true)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	sub.id = b.nextID
	b.subs = append(b.subs, sub)
	sort.SliceStable(b.subs, func(i, j int) bool {
		return b.subs[i].priority < b.subs[j].priority
	})
	return sub, nil
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every matching handler and returns their errors
// joined. A panicking handler contributes an error wrapping
// ErrHandlerPanic.
func (b *Bus) Publish(ctx context.Context, ev Event) error {
	if !ev.Topic.IsValid() || ev.Topic.IsWildcard() {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, ev.Topic)
	}
	b.published.Add(1)

	b.mu.RLock()
	matched := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if ev.Topic.Matches(s.pattern) {
			matched = append(matched, s)
		}
	}
	b.mu.RUnlock()

	var errs []error
	for _, s := range matched {
		if !s.IsActive() {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := b.deliver(ctx, s, ev); err != nil {
			errs = append(errs, &HandlerError{SubscriptionID: s.id, Topic: ev.Topic, Err: err})
			continue
		}
		b.delivered.Add(1)
		if s.once {
			s.Cancel()
		}
	}
	return errors.Join(errs...)
}

func (b *Bus) deliver(ctx context.Context, s *Subscription, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
			b.logger.Error("event handler panicked",
				slog.String("topic", ev.Topic.String()),
				slog.Uint64("subscription", s.id),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()

	if err := s.handler(ctx, ev); err != nil {
		b.handlerErrors.Add(1)
		b.logger.Warn("event handler failed",
			slog.String("topic", ev.Topic.String()),
			slog.Uint64("subscription", s.id),
			slog.Any("error", err))
		return err
	}
	return nil
}

// Stats returns the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.RLock()
	n := len(b.subs)
	b.mu.RUnlock()
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerErrors: b.handlerErrors.Load(),
		HandlerPanics: b.handlerPanics.Load(),
		Subscriptions: n,
	}
}
