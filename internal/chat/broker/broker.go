package broker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"gigmarket/internal/chat/events"
	"gigmarket/internal/common"
	"gigmarket/internal/config"
)

const defaultQueueSize = 64

// ErrClosed is returned by Next once a subscription has been closed and its
// queue drained. The returned error also wraps the reason for the close.
var ErrClosed = errors.New("subscription closed")

var errStopped = fmt.Errorf("%w: event broker stopped: %w", ErrClosed, common.ErrUnavailable)

// Filter is evaluated for every event published on a subscription's topic,
// at enqueue time. A nil Filter admits everything.
type Filter func(events.Event) bool

type SubscribeOptions struct {
	Owner  string
	Scope  string
	Filter Filter
}

// Broker is a topic-keyed publish/subscribe hub with one topic per event
// kind. Publish never blocks on a subscriber: each subscription owns a
// bounded queue and the oldest queued event is dropped on overflow.
type Broker struct {
	queueSize int

	mu      sync.RWMutex
	topics  map[events.Kind]map[string]*Subscription
	running bool
}

func NewBroker(cfg *config.Config) *Broker {
	size := cfg.Broker.SubscriberQueueSize
	if size <= 0 {
		size = defaultQueueSize
	}
	b := &Broker{
		queueSize: size,
		topics:    make(map[events.Kind]map[string]*Subscription, len(events.Kinds)),
	}
	for _, kind := range events.Kinds {
		b.topics[kind] = make(map[string]*Subscription)
	}
	return b
}

func (b *Broker) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.running = true
	log.Printf("Event broker started (queue size %d)", b.queueSize)
}

// Stop closes every live subscription. Publishing after Stop is a no-op.
func (b *Broker) Stop() {
	b.mu.Lock()
	b.running = false
	var all []*Subscription
	for kind, subs := range b.topics {
		for _, sub := range subs {
			all = append(all, sub)
		}
		b.topics[kind] = make(map[string]*Subscription)
	}
	b.mu.Unlock()

	for _, sub := range all {
		sub.close(errStopped)
	}
	log.Printf("Event broker stopped, closed %d subscriptions", len(all))
}

func (b *Broker) Subscribe(kind events.Kind, opts SubscribeOptions) (*Subscription, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return nil, fmt.Errorf("%w: event broker is not running", common.ErrUnavailable)
	}
	subs, ok := b.topics[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown topic %q", common.ErrInvalidArgument, kind)
	}

	sub := &Subscription{
		id:     uuid.NewString(),
		kind:   kind,
		owner:  opts.Owner,
		scope:  opts.Scope,
		filter: opts.Filter,
		queue:  make(chan events.Event, b.queueSize),
		done:   make(chan struct{}),
		broker: b,
	}
	subs[sub.id] = sub
	return sub, nil
}

// Unsubscribe removes sub from its topic and closes it. Safe to call more
// than once.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	if subs, ok := b.topics[sub.kind]; ok {
		delete(subs, sub.id)
	}
	b.mu.Unlock()
	sub.close(ErrClosed)
}

// CloseWhere closes every subscription on kind for which match is true,
// recording reason as the close cause, and returns how many were closed.
func (b *Broker) CloseWhere(kind events.Kind, match func(*Subscription) bool, reason error) int {
	b.mu.Lock()
	var closing []*Subscription
	for id, sub := range b.topics[kind] {
		if match(sub) {
			closing = append(closing, sub)
			delete(b.topics[kind], id)
		}
	}
	b.mu.Unlock()

	cause := fmt.Errorf("%w: %w", ErrClosed, reason)
	for _, sub := range closing {
		sub.close(cause)
	}
	return len(closing)
}

// Publish fans ev out to every subscription of its topic. It returns the
// number of subscriptions that accepted the event.
func (b *Broker) Publish(ev events.Event) int {
	b.mu.RLock()
	if !b.running {
		b.mu.RUnlock()
		log.Printf("Event broker not running, dropping %s event", ev.Kind())
		return 0
	}
	subs := make([]*Subscription, 0, len(b.topics[ev.Kind()]))
	for _, sub := range b.topics[ev.Kind()] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	delivered := 0
	for _, sub := range subs {
		if sub.offer(ev) {
			delivered++
		}
	}
	return delivered
}

// Count reports the live subscriptions on kind.
func (b *Broker) Count(kind events.Kind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.topics[kind])
}

type Subscription struct {
	id     string
	kind   events.Kind
	owner  string
	scope  string
	filter Filter
	broker *Broker

	mu        sync.Mutex
	queue     chan events.Event
	done      chan struct{}
	closeOnce sync.Once
	closeErr  error
	dropped   atomic.Uint64
}

func (s *Subscription) ID() string        { return s.id }
func (s *Subscription) Kind() events.Kind { return s.kind }
func (s *Subscription) Owner() string     { return s.owner }
func (s *Subscription) Scope() string     { return s.scope }

// Done is closed when the subscription is closed by either side.
func (s *Subscription) Done() <-chan struct{} { return s.done }

// Dropped reports how many events were discarded because the queue was full.
func (s *Subscription) Dropped() uint64 { return s.dropped.Load() }

func (s *Subscription) Close() {
	s.broker.Unsubscribe(s)
}

// Next blocks until an event is queued, the subscription is closed or ctx
// ends. Events queued before close are still handed out.
func (s *Subscription) Next(ctx context.Context) (events.Event, error) {
	select {
	case ev := <-s.queue:
		return ev, nil
	default:
	}

	select {
	case ev := <-s.queue:
		return ev, nil
	case <-s.done:
		select {
		case ev := <-s.queue:
			return ev, nil
		default:
			return nil, s.closeErr
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Subscription) offer(ev events.Event) bool {
	if s.filter != nil && !s.filter(ev) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.queue <- ev:
		return true
	default:
	}

	// Queue full: make room by discarding the oldest event.
	select {
	case old := <-s.queue:
		s.dropped.Add(1)
		log.Printf("Subscription %s (%s) full, dropping oldest %s event", s.id, s.owner, old.Kind())
	default:
	}
	select {
	case s.queue <- ev:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

func (s *Subscription) close(reason error) {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closeErr = reason
		close(s.done)
		s.mu.Unlock()
	})
}
